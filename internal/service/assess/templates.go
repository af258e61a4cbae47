package assess

// Pre-authored interview question blocks keyed by role family. The copy is
// part of the product contract and is returned verbatim.

const softwareEngineerQuestions = `1. What is your experience with object-oriented programming?
   - Look for understanding of classes, inheritance, polymorphism, encapsulation
   - Candidate should provide specific examples from previous work

2. Explain the difference between a stack and a queue
   - Stack: LIFO (Last In First Out) data structure
   - Queue: FIFO (First In First Out) data structure
   - Candidate should explain use cases for each

3. How do you approach debugging a complex issue?
   - Look for systematic approach (isolating the problem, reproducing it, etc.)
   - Candidate should mention debugging tools they're familiar with

4. Describe a situation where you had to optimize code for performance
   - Look for understanding of performance bottlenecks
   - Candidate should explain their methodology and results

5. How do you handle code reviews?
   - Look for collaborative attitude
   - Candidate should mention how they give and receive feedback

6. Explain RESTful API principles
   - Statelessness, client-server architecture, cacheability
   - Proper use of HTTP methods (GET, POST, PUT, DELETE)

7. How do you stay updated with new technologies?
   - Look for continuous learning habits
   - Candidate should mention specific resources they use

8. Describe your experience with version control systems
   - Look for Git workflow knowledge
   - Understanding of branching strategies, merge conflicts resolution

9. How would you implement error handling in a web application?
   - Look for understanding of try-catch blocks, error logging
   - Knowledge of graceful degradation and user-friendly error messages

10. Tell me about a challenging project you worked on
    - Look for problem-solving ability and technical depth
    - Candidate should explain their specific contributions and learnings`

const dataScientistQuestions = `1. How would you explain the difference between supervised and unsupervised learning?
   - Supervised: Learning with labeled data, prediction-focused
   - Unsupervised: Learning without labels, pattern discovery

2. Explain the bias-variance tradeoff
   - Bias: Simplifying assumptions, underfitting
   - Variance: Sensitivity to training data, overfitting
   - Need to balance both for optimal model performance

3. How do you handle missing data?
   - Look for multiple approaches: imputation, deletion, dedicated missing value category
   - Understanding when each approach is appropriate

4. Describe your experience with feature engineering
   - Creating new features from existing data
   - Scaling, normalization, encoding categorical variables
   - Domain knowledge application

5. What metrics would you use to evaluate a classification model?
   - Accuracy, precision, recall, F1-score, ROC AUC
   - Understanding when each metric is appropriate (e.g., imbalanced classes)

6. How would you explain a complex model to non-technical stakeholders?
   - Focus on simplifying technical concepts
   - Use of visualizations, analogies, and business impact

7. Describe your experience with deep learning
   - Understanding of neural networks, training process
   - Experience with frameworks like TensorFlow or PyTorch

8. How do you approach A/B testing?
   - Experiment design, hypothesis formulation
   - Sample size determination, statistical significance
   - Result interpretation and decision making

9. How do you ensure your data analysis is reproducible?
   - Version control for code and data
   - Documentation, dependency management
   - Use of notebooks or reports

10. Describe a data project where your insights led to meaningful business impact
    - Problem definition, methodology, challenges overcome
    - Quantifiable business results and learnings`

const productManagerQuestions = `1. How do you prioritize features in a product roadmap?
   - Framework usage (e.g., RICE, MoSCoW, Impact/Effort matrix)
   - Balancing stakeholder needs with technical constraints
   - Data-driven decision making

2. How do you gather and incorporate user feedback?
   - Multiple channels: user interviews, surveys, analytics
   - Qualitative vs. quantitative feedback handling
   - Validation and prioritization process

3. Describe your experience with agile development methodologies
   - Understanding of sprints, stand-ups, retros
   - Adapting processes to team needs
   - Balancing agility with planning

4. How do you measure product success?
   - Key performance indicators selection
   - North star metric identification
   - Balancing short and long-term metrics

5. How do you work with engineering teams?
   - Technical specification development
   - Requirement clarity and prioritization
   - Handling scope changes and technical constraints

6. Tell me about a time you had to make a difficult product decision
   - Decision-making framework
   - Stakeholder management
   - Trade-offs considered

7. How do you approach competitive analysis?
   - Research methodology
   - Feature and positioning comparison
   - Incorporating insights into product strategy

8. Describe your experience with product launches
   - Launch planning and coordination
   - Cross-functional collaboration
   - Metrics tracking and issue resolution

9. How do you handle situations where data contradicts intuition?
   - Balancing qualitative and quantitative insights
   - Further investigation approaches
   - Decision-making process

10. What's your approach to building product vision and strategy?
    - Market research and user needs identification
    - Alignment with company goals
    - Communication to stakeholders and teams`

const genericQuestions = `1. What experience do you have that's relevant to this position?
   - Look for alignment with job requirements
   - Candidate should provide specific examples

2. How do you approach problem-solving in your work?
   - Look for structured thinking
   - Evidence of analytical approach

3. Describe a challenging project you worked on
   - Look for complexity and scope
   - Focus on personal contribution and outcomes

4. How do you handle feedback and criticism?
   - Look for growth mindset
   - Specific examples of implementing feedback

5. Tell me about a time you had to work under pressure
   - Look for stress management strategies
   - Focus on results achieved despite constraints

6. How do you prioritize your work?
   - Look for time management skills
   - Understanding of importance vs. urgency

7. Describe your experience working in a team
   - Look for collaboration skills
   - Handling of team conflicts

8. What are your greatest professional strengths?
   - Look for self-awareness
   - Alignment with job requirements

9. How do you stay updated in your field?
   - Look for continuous learning habits
   - Specific resources mentioned

10. Where do you see yourself professionally in five years?
    - Look for ambition and realistic goals
    - Alignment with company growth opportunities`

package learnpath

import (
	"fmt"
	"strings"

	"ai-toolkit/internal/domain/entity"
)

// Template names, also used as the metrics label.
const (
	TemplateWeb    = "web"
	TemplateData   = "data"
	TemplateCustom = "custom"
)

var (
	webKeywords  = []string{"web", "javascript", "react"}
	dataKeywords = []string{"data", "science", "analytics"}
)

// pace picks a duration for the time commitment: slow for 1-2 hours a week,
// mid for 3-5, fast for anything more.
func pace(t TimeCommitment, slow, mid, fast string) string {
	switch t {
	case Hours1To2:
		return slow
	case Hours3To5:
		return mid
	default:
		return fast
	}
}

// stepPace distinguishes only the 1-2 hour bucket.
func stepPace(t TimeCommitment, slow, normal string) string {
	if t == Hours1To2 {
		return slow
	}
	return normal
}

// selectTemplate returns the template name for a goal.
func selectTemplate(goal string) string {
	g := strings.ToLower(goal)
	switch {
	case containsAny(g, webKeywords):
		return TemplateWeb
	case containsAny(g, dataKeywords):
		return TemplateData
	default:
		return TemplateCustom
	}
}

func containsAny(s string, subs []string) bool {
	for _, sub := range subs {
		if strings.Contains(s, sub) {
			return true
		}
	}
	return false
}

func webPath(t TimeCommitment) *entity.LearningPath {
	return &entity.LearningPath{
		Title:         "Full-Stack Web Development Path",
		Description:   "Complete roadmap to become a proficient web developer",
		TotalDuration: pace(t, "8-12 months", "6-9 months", "4-6 months"),
		Outcomes:      []string{"Build responsive websites", "Create web applications", "Deploy to production", "Land a developer job"},
		Steps: []entity.LearningStep{
			{
				ID:          "1",
				Title:       "HTML & CSS Fundamentals",
				Description: "Master the building blocks of web development",
				Duration:    stepPace(t, "6-8 weeks", "3-4 weeks"),
				Difficulty:  "Beginner",
				Skills:      []string{"HTML5", "CSS3", "Flexbox", "Responsive Design"},
			},
			{
				ID:          "2",
				Title:       "JavaScript Programming",
				Description: "Learn JavaScript from basics to advanced concepts",
				Duration:    stepPace(t, "8-10 weeks", "4-6 weeks"),
				Difficulty:  "Intermediate",
				Skills:      []string{"ES6+", "DOM Manipulation", "Async/Await", "Event Handling"},
			},
			{
				ID:          "3",
				Title:       "React Development",
				Description: "Build dynamic user interfaces with React",
				Duration:    stepPace(t, "8-10 weeks", "5-7 weeks"),
				Difficulty:  "Intermediate",
				Skills:      []string{"React Hooks", "State Management", "Component Architecture"},
			},
			{
				ID:          "4",
				Title:       "Backend with Node.js",
				Description: "Create server-side applications",
				Duration:    stepPace(t, "8-10 weeks", "4-6 weeks"),
				Difficulty:  "Advanced",
				Skills:      []string{"Node.js", "Express.js", "REST APIs", "Database Design"},
			},
		},
	}
}

func dataPath(t TimeCommitment) *entity.LearningPath {
	return &entity.LearningPath{
		Title:         "Data Science & Analytics Path",
		Description:   "Journey from data analysis to machine learning",
		TotalDuration: pace(t, "10-14 months", "7-10 months", "5-7 months"),
		Outcomes:      []string{"Analyze complex datasets", "Build ML models", "Create visualizations", "Get hired as data scientist"},
		Steps: []entity.LearningStep{
			{
				ID:          "1",
				Title:       "Python for Data Science",
				Description: "Master Python with focus on data manipulation",
				Duration:    stepPace(t, "6-8 weeks", "3-4 weeks"),
				Difficulty:  "Beginner",
				Skills:      []string{"Python Basics", "NumPy", "Pandas", "Data Structures"},
			},
			{
				ID:          "2",
				Title:       "Statistics & Mathematics",
				Description: "Build foundation in statistics and probability",
				Duration:    stepPace(t, "8-10 weeks", "4-6 weeks"),
				Difficulty:  "Intermediate",
				Skills:      []string{"Statistics", "Probability", "Hypothesis Testing", "Linear Algebra"},
			},
			{
				ID:          "3",
				Title:       "Data Visualization",
				Description: "Create compelling visualizations and dashboards",
				Duration:    stepPace(t, "6-8 weeks", "3-4 weeks"),
				Difficulty:  "Intermediate",
				Skills:      []string{"Matplotlib", "Seaborn", "Plotly", "Dashboard Creation"},
			},
			{
				ID:          "4",
				Title:       "Machine Learning",
				Description: "Build and evaluate ML models",
				Duration:    stepPace(t, "10-12 weeks", "6-8 weeks"),
				Difficulty:  "Advanced",
				Skills:      []string{"Supervised Learning", "Feature Engineering", "Model Evaluation"},
			},
		},
	}
}

func customPath(goal string, t TimeCommitment) *entity.LearningPath {
	return &entity.LearningPath{
		Title:         "Personalized Path: " + goal,
		Description:   fmt.Sprintf("Tailored roadmap to achieve your goal of %s", goal),
		TotalDuration: stepPace(t, "6-12 months", "4-8 months"),
		Outcomes:      []string{"Master " + goal, "Build practical projects", "Gain industry knowledge"},
		Steps: []entity.LearningStep{
			{
				ID:          "1",
				Title:       "Foundation Building",
				Description: "Establish fundamentals in " + goal,
				Duration:    stepPace(t, "4-6 weeks", "2-3 weeks"),
				Difficulty:  "Beginner",
				Skills:      []string{"Basic concepts", "Core principles", "Tool familiarity"},
			},
			{
				ID:          "2",
				Title:       "Skill Development",
				Description: "Develop intermediate skills and experience",
				Duration:    stepPace(t, "8-10 weeks", "4-6 weeks"),
				Difficulty:  "Intermediate",
				Skills:      []string{"Intermediate techniques", "Problem solving", "Best practices"},
			},
			{
				ID:          "3",
				Title:       "Advanced Application",
				Description: "Apply advanced concepts in real projects",
				Duration:    stepPace(t, "8-12 weeks", "4-8 weeks"),
				Difficulty:  "Advanced",
				Skills:      []string{"Advanced concepts", "Project management", "Industry standards"},
			},
		},
	}
}

package database

import (
	"fmt"
	"log"
	"os"

	"github.com/lib/pq"
	"github.com/sahilchouksey/testprep-api/model"
	"github.com/sahilchouksey/testprep-api/utils/auth"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Seeder handles database seeding operations
type Seeder struct {
	db *gorm.DB
}

// NewSeeder creates a new seeder instance
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db}
}

// SeedAdminUser creates the default admin user from ADMIN_EMAIL and
// ADMIN_PASSWORD. Skipped when an admin already exists or the
// environment variables are not set.
func (s *Seeder) SeedAdminUser() error {
	var count int64
	if err := s.db.Model(&model.User{}).Where("role = ?", model.RoleAdmin).Count(&count).Error; err != nil {
		return err
	}

	if count > 0 {
		log.Println("Admin user already exists, skipping...")
		return nil
	}

	adminEmail := os.Getenv("ADMIN_EMAIL")
	adminPassword := os.Getenv("ADMIN_PASSWORD")

	if adminEmail == "" || adminPassword == "" {
		log.Println("ADMIN_EMAIL and ADMIN_PASSWORD environment variables not set, skipping admin user creation")
		return nil
	}

	passwordHash, err := auth.HashPassword(adminPassword)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin := model.User{
		Email:        adminEmail,
		PasswordHash: passwordHash,
		Name:         "Administrator",
		Role:         model.RoleAdmin,
	}

	if err := s.db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created admin user: %s", adminEmail)
	return nil
}

// SeedSampleData inserts the demonstration universities and questions.
// Rows are appended on every call; callers gate re-invocation.
func (s *Seeder) SeedSampleData() error {
	log.Println("Seeding sample universities and questions...")

	return s.db.Transaction(func(tx *gorm.DB) error {
		universities := SampleUniversities()
		if err := tx.Create(&universities).Error; err != nil {
			return fmt.Errorf("failed to seed universities: %w", err)
		}

		questions := SampleQuestions()
		for i := range questions {
			if !questions[i].HasValidAnswer() {
				return fmt.Errorf("sample question %d has out-of-range correct answer", i)
			}
		}
		if err := tx.Create(&questions).Error; err != nil {
			return fmt.Errorf("failed to seed questions: %w", err)
		}

		log.Printf("Seeded %d universities and %d questions", len(universities), len(questions))
		return nil
	})
}

func intPtr(n int) *int { return &n }

// SampleUniversities returns the fixed demonstration university records
func SampleUniversities() []model.University {
	return []model.University{
		{
			Name:          "Massachusetts Institute of Technology",
			Country:       "USA",
			Ranking:       intPtr(1),
			TuitionFee:    "$57,986/year",
			Scholarships:  datatypes.JSON([]byte(`["Need-based financial aid","Presidential Fellowship"]`)),
			RequiresGRE:   true,
			RequiresTOEFL: true,
			Description:   "Private research university in Cambridge, Massachusetts.",
			Website:       "https://www.mit.edu",
		},
		{
			Name:          "Stanford University",
			Country:       "USA",
			Ranking:       intPtr(3),
			TuitionFee:    "$58,416/year",
			Scholarships:  datatypes.JSON([]byte(`["Knight-Hennessy Scholars","Athletic scholarships"]`)),
			RequiresGRE:   true,
			RequiresGMAT:  true,
			RequiresTOEFL: true,
			Description:   "Private research university in Stanford, California.",
			Website:       "https://www.stanford.edu",
		},
		{
			Name:          "University of Oxford",
			Country:       "UK",
			Ranking:       intPtr(2),
			TuitionFee:    "£28,950/year",
			Scholarships:  datatypes.JSON([]byte(`["Rhodes Scholarship","Clarendon Fund"]`)),
			RequiresIELTS: true,
			Description:   "Collegiate research university in Oxford, England.",
			Website:       "https://www.ox.ac.uk",
		},
		{
			Name:          "University of Toronto",
			Country:       "Canada",
			Ranking:       intPtr(21),
			TuitionFee:    "CAD 58,160/year",
			Scholarships:  datatypes.JSON([]byte(`["Lester B. Pearson International Scholarship"]`)),
			RequiresGRE:   true,
			RequiresIELTS: true,
			RequiresTOEFL: true,
			Description:   "Public research university in Toronto, Ontario.",
			Website:       "https://www.utoronto.ca",
		},
		{
			Name:          "University of Melbourne",
			Country:       "Australia",
			Ranking:       intPtr(34),
			TuitionFee:    "AUD 46,000/year",
			Scholarships:  datatypes.JSON([]byte(`["Melbourne International Undergraduate Scholarship"]`)),
			RequiresIELTS: true,
			RequiresTOEFL: true,
			Description:   "Public research university in Melbourne, Victoria.",
			Website:       "https://www.unimelb.edu.au",
		},
	}
}

// SampleQuestions returns the fixed demonstration question records
func SampleQuestions() []model.Question {
	return []model.Question{
		{
			TestType:      "gre",
			Section:       "verbal",
			QuestionText:  "Choose the word most nearly opposite in meaning to EPHEMERAL.",
			Options:       pq.StringArray{"transient", "enduring", "fleeting", "momentary"},
			CorrectAnswer: 1,
			Explanation:   "Ephemeral means lasting a very short time; enduring is its antonym.",
			Difficulty:    model.DifficultyMedium,
		},
		{
			TestType:      "gre",
			Section:       "quantitative",
			QuestionText:  "If 3x + 7 = 22, what is the value of x?",
			Options:       pq.StringArray{"3", "5", "7", "15"},
			CorrectAnswer: 1,
			Explanation:   "Subtract 7 from both sides to get 3x = 15, so x = 5.",
			Difficulty:    model.DifficultyEasy,
		},
		{
			TestType:      "gre",
			Section:       "quantitative",
			QuestionText:  "What is the area of a circle with radius 6?",
			Options:       pq.StringArray{"12π", "24π", "36π", "42π"},
			CorrectAnswer: 2,
			Explanation:   "Area is πr², and 6² = 36, giving 36π.",
			Difficulty:    model.DifficultyEasy,
		},
		{
			TestType:     "gmat",
			Section:      "verbal",
			QuestionText: "Identify the sentence with correct subject-verb agreement.",
			Options: pq.StringArray{
				"The group of students were studying.",
				"The group of students was studying.",
				"The group of students are studying.",
				"The group of students have been studying.",
			},
			CorrectAnswer: 1,
			Explanation:   "The collective noun 'group' takes a singular verb.",
			Difficulty:    model.DifficultyMedium,
		},
		{
			TestType:      "ielts",
			Section:       "reading",
			QuestionText:  "A passage states that remote work 'gained traction'. This means remote work...",
			Options:       pq.StringArray{"lost popularity", "became more common", "was banned", "stayed unchanged"},
			CorrectAnswer: 1,
			Explanation:   "'Gained traction' is an idiom meaning became increasingly accepted or popular.",
			Difficulty:    model.DifficultyMedium,
		},
		{
			TestType:      "toefl",
			Section:       "listening",
			QuestionText:  "In a lecture, the phrase 'let me backtrack' signals that the speaker will...",
			Options:       pq.StringArray{"change topics", "return to an earlier point", "end the lecture", "ask a question"},
			CorrectAnswer: 1,
			Explanation:   "Backtracking means going back to something said earlier.",
			Difficulty:    model.DifficultyHard,
		},
	}
}

package legacy

import (
	"log"
	"os"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init() {
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		// Fallback for local dev if not set
		dsn = "host=localhost user=postgres password=postgres dbname=dadam port=5432 sslmode=disable TimeZone=Asia/Seoul"
	}

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	log.Println("Database connection established")

	err = DB.AutoMigrate(
		&User{},
		&Question{},
		&Answer{},
		&Comment{},
		&Schedule{},
		&GameSelection{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	log.Println("Database migration completed")

	seedQuestions()
}

// 기본 질문 은행. 날짜 배정은 TodayQuestion 이 한다.
var questionBank = []string{
	"오늘 가장 고마웠던 사람은 누구인가요?",
	"요즘 가장 듣고 싶은 말은 무엇인가요?",
	"가족과 함께 가고 싶은 여행지는 어디인가요?",
	"어렸을 때 제일 좋아했던 음식은 무엇인가요?",
	"최근에 크게 웃었던 순간은 언제인가요?",
	"우리 가족만의 소소한 행복은 무엇인가요?",
	"요즘 새로 배우고 싶은 것이 있나요?",
	"10년 뒤 우리 가족은 어떤 모습일까요?",
	"오늘 하루를 색깔로 표현하면 무슨 색인가요?",
	"가족에게 미안했지만 말 못했던 일이 있나요?",
	"서로에게 바라는 주말 계획은 무엇인가요?",
	"최근에 가장 뿌듯했던 일은 무엇인가요?",
	"우리 집에서 제일 좋아하는 공간은 어디인가요?",
	"가족과 꼭 해보고 싶은 버킷리스트가 있나요?",
}

func seedQuestions() {
	var count int64
	DB.Model(&Question{}).Count(&count)
	if count > 0 {
		log.Println("Questions already seeded, skipping")
		return
	}

	for _, text := range questionBank {
		if err := DB.Create(&Question{Text: text}).Error; err != nil {
			log.Printf("Failed to seed question: %v", err)
		}
	}
	log.Println("Initial questions created successfully")
}

// TodayQuestion 오늘 날짜에 배정된 질문. 아직 없으면 배정 안 된
// 질문 중 하나를 오늘자로 배정한다.
func TodayQuestion() (Question, error) {
	today := time.Now().Format("2006-01-02")

	var q Question
	if err := DB.Where("asked_on = ?", today).First(&q).Error; err == nil {
		return q, nil
	}

	if err := DB.Where("asked_on = '' OR asked_on IS NULL").Order("id ASC").First(&q).Error; err != nil {
		// 은행이 바닥나면 제일 오래전에 나온 질문을 다시 쓴다
		if err := DB.Order("asked_on ASC").First(&q).Error; err != nil {
			return Question{}, err
		}
	}

	q.AskedOn = today
	if err := DB.Save(&q).Error; err != nil {
		return Question{}, err
	}
	return q, nil
}

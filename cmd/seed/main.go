// Seeds the database with demo data: one instructor, two students, and a
// course with two lessons of two problems each.
package main

import (
	"log"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lms/config"
	"lms/models"
	"lms/policy"
	"lms/services"
	"lms/store"
	"lms/utils"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	db, err := utils.InitDB(cfg)
	if err != nil {
		log.Fatalf("Error initializing database: %v", err)
	}

	// Wipe previous demo data.
	for _, model := range []interface{}{
		&models.Progress{}, &models.Problem{}, &models.Lesson{}, &models.Course{}, &models.User{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error; err != nil {
			log.Fatalf("Error wiping table: %v", err)
		}
	}

	users := store.NewUsers(db)
	catalog := services.NewCatalog(store.NewCourses(db), store.NewLessons(db))

	instructor := mustCreateUser(users, "Alice Instructor", "alice@teach.com", "password", models.RoleInstructor)
	student1 := mustCreateUser(users, "Bob Student", "bob@student.com", "password", models.RoleStudent)
	student2 := mustCreateUser(users, "Carol Student", "carol@student.com", "password", models.RoleStudent)

	identity := policy.Identity{UserID: instructor.ID, Role: instructor.Role}

	course, err := catalog.CreateCourse(identity, "Intro to Algorithms", "Basics and problem solving")
	if err != nil {
		log.Fatalf("Error creating course: %v", err)
	}

	lessons := []struct {
		title    string
		notes    string
		problems []services.NewProblem
	}{
		{
			title: "Lesson 1: Complexity",
			notes: "Study Big-O",
			problems: []services.NewProblem{
				{Question: "What is O(n)?"},
				{Question: "What is O(log n)?"},
			},
		},
		{
			title: "Lesson 2: Sorting",
			notes: "Compare sorts",
			problems: []services.NewProblem{
				{Question: "Implement bubble sort"},
				{Question: "Why merge sort is O(n log n)?"},
			},
		},
	}
	for _, l := range lessons {
		if _, err := catalog.CreateLesson(identity, course.ID, l.title, l.notes, l.problems); err != nil {
			log.Fatalf("Error creating lesson: %v", err)
		}
	}

	log.Println("Seeding complete")
	log.Println("Instructor:", instructor.Email, "password: password")
	log.Println("Students:", student1.Email, student2.Email, "password: password")
}

func mustCreateUser(users store.Users, name, email, password, role string) models.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Error hashing password: %v", err)
	}
	user := models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	if err := users.Create(&user); err != nil {
		log.Fatalf("Error creating user %s: %v", email, err)
	}
	return user
}

package catalog

import "github.com/blanklearn/marketplace-backend/internal/model"

var sampleCourseTeachers = []model.TeacherRef{
	{ID: "t1", Name: "Alice Wonderland", BioShort: "Creative Coding Expert"},
	{ID: "t2", Name: "Bob The Builder", BioShort: "History Buff & Storyteller"},
	{ID: "t3", Name: "Charlie Chaplin", BioShort: "Physics & Astronomy Guru"},
	{ID: "t4", Name: "Diana Prince", BioShort: "Art & Design Enthusiast"},
}

// SampleCourses returns the built-in course catalog. Each call returns fresh slices.
func SampleCourses() []model.Course {
	return []model.Course{
		{
			ID:               "course-1",
			Title:            "Introduction to Python Programming",
			Subject:          "Coding",
			AgeGroup:         "13-15",
			Description:      "Learn the fundamentals of Python, one of the most popular programming languages. We will cover variables, loops, functions, and build a simple game. No prior coding experience needed!",
			ShortDescription: "Master Python basics and build your first game.",
			Schedule:         "Mon & Wed, 4 PM - 5 PM EST",
			Price:            120,
			Type:             model.DeliveryLive,
			Duration:         "4 Weeks",
			Teacher:          sampleCourseTeachers[0],
			Rating:           4.8,
			Reviews:          150,
			LearningObjectives: []string{
				"Understand basic programming concepts.",
				"Write simple Python scripts.",
				"Use loops and conditional statements.",
				"Define and call functions.",
				"Create a text-based adventure game.",
			},
		},
		{
			ID:               "course-2",
			Title:            "World War II History Deep Dive",
			Subject:          "History",
			AgeGroup:         "16+",
			Description:      "Explore the major events, figures, and consequences of World War II. This recorded course includes lectures, primary source analysis, and quizzes.",
			ShortDescription: "In-depth analysis of World War II events and impacts.",
			Price:            75,
			Type:             model.DeliveryRecorded,
			Duration:         "8 Hours Content",
			Teacher:          sampleCourseTeachers[1],
			Rating:           4.5,
			Reviews:          85,
			LearningObjectives: []string{
				"Identify key causes and triggers of WWII.",
				"Analyze major battles and turning points.",
				"Understand the impact of the war on global politics.",
				"Evaluate primary source documents from the era.",
			},
		},
		{
			ID:               "course-3",
			Title:            "Mysteries of the Universe: Astronomy for Kids",
			Subject:          "Science",
			AgeGroup:         "9-12",
			Description:      "Blast off into space! Learn about planets, stars, galaxies, black holes, and more in this exciting live class with interactive activities and virtual telescope sessions.",
			ShortDescription: "Explore planets, stars, and galaxies interactively.",
			Schedule:         "Tuesdays, 6 PM - 7 PM PST",
			Price:            90,
			Type:             model.DeliveryLive,
			Duration:         "6 Weeks",
			Teacher:          sampleCourseTeachers[2],
			Rating:           4.9,
			Reviews:          210,
			LearningObjectives: []string{
				"Name the planets in our solar system and their key features.",
				"Describe the life cycle of a star.",
				"Explain what galaxies and black holes are.",
				"Use virtual tools to observe celestial objects.",
			},
		},
		{
			ID:               "course-4",
			Title:            "Digital Art Fundamentals with Procreate",
			Subject:          "Art",
			AgeGroup:         "13+",
			Description:      "Unleash your creativity! Learn the basics of digital painting and illustration using the Procreate app on iPad. Covers layers, brushes, color theory, and creating your own characters.",
			ShortDescription: "Learn digital painting basics using Procreate.",
			Price:            150,
			Type:             model.DeliveryRecorded,
			Duration:         "10 Hours Content",
			Teacher:          sampleCourseTeachers[3],
			Rating:           4.7,
			Reviews:          120,
			LearningObjectives: []string{
				"Navigate the Procreate interface confidently.",
				"Utilize layers and blending modes effectively.",
				"Apply basic color theory principles.",
				"Create simple character illustrations.",
				"Experiment with different brushes and textures.",
			},
		},
		{
			ID:               "course-5",
			Title:            "Creative Writing Workshop: Fantasy Worlds",
			Subject:          "Writing",
			AgeGroup:         "12-15",
			Description:      "Build your own fantasy world! This live workshop focuses on world-building, character creation, plot development, and writing compelling fantasy stories. Share your work and get feedback.",
			ShortDescription: "Craft fantasy worlds, characters, and stories.",
			Schedule:         "Thursdays, 5 PM - 6:30 PM CST",
			Price:            110,
			Type:             model.DeliveryLive,
			Duration:         "5 Weeks",
			Teacher:          sampleCourseTeachers[0],
			Rating:           4.6,
			Reviews:          95,
			LearningObjectives: []string{
				"Develop unique and believable fantasy settings.",
				"Create compelling characters with clear motivations.",
				"Outline and structure a fantasy plot.",
				"Write engaging descriptive passages.",
				"Provide and receive constructive feedback.",
			},
		},
		{
			ID:               "course-6",
			Title:            "Introduction to Web Development (HTML & CSS)",
			Subject:          "Coding",
			AgeGroup:         "16+",
			Description:      "Learn the building blocks of the web! This recorded course teaches you how to structure web pages with HTML and style them with CSS. Build your first personal website.",
			ShortDescription: "Build websites using HTML and CSS fundamentals.",
			Price:            60,
			Type:             model.DeliveryRecorded,
			Duration:         "6 Hours Content",
			Teacher:          sampleCourseTeachers[1],
			Rating:           4.4,
			Reviews:          70,
			LearningObjectives: []string{
				"Understand the structure of an HTML document.",
				"Use common HTML tags for text, images, and links.",
				"Apply CSS rules to style web page elements.",
				"Understand basic layout techniques (Flexbox/Grid).",
				"Create and deploy a simple multi-page website.",
			},
		},
		{
			ID:               "course-7",
			Title:            "Beginner Spanish Conversation Club",
			Subject:          "Language",
			AgeGroup:         "9-12",
			Description:      "¡Hola! Practice basic Spanish conversation skills in a fun, interactive group setting. Learn greetings, common phrases, and talk about hobbies and family.",
			ShortDescription: "Practice basic Spanish conversation.",
			Schedule:         "Fridays, 3 PM - 3:45 PM EST",
			Price:            80,
			Type:             model.DeliveryLive,
			Duration:         "8 Weeks",
			Teacher:          sampleCourseTeachers[3],
			Rating:           4.7,
			Reviews:          115,
			LearningObjectives: []string{
				"Use basic Spanish greetings and introductions.",
				"Ask and answer simple questions.",
				"Talk about likes, dislikes, and hobbies.",
				"Describe family members.",
			},
		},
		{
			ID:               "course-8",
			Title:            "Physics Fun: Simple Machines & Forces",
			Subject:          "Science",
			AgeGroup:         "6-8",
			Description:      "Discover the world of physics through hands-on experiments! Explore levers, pulleys, inclined planes, and learn about forces like gravity and friction.",
			ShortDescription: "Explore simple machines and forces with experiments.",
			Schedule:         "Wednesdays, 10 AM - 11 AM PST",
			Price:            95,
			Type:             model.DeliveryLive,
			Duration:         "6 Weeks",
			Teacher:          sampleCourseTeachers[2],
			Rating:           4.9,
			Reviews:          180,
			LearningObjectives: []string{
				"Identify different types of simple machines.",
				"Explain how simple machines make work easier.",
				"Describe the concepts of force, gravity, and friction.",
				"Conduct simple physics experiments safely.",
			},
		},
	}
}

// SampleTeachers returns the built-in teacher catalog. Each call returns fresh values.
func SampleTeachers() []model.Teacher {
	return []model.Teacher{
		{
			ID:                 "teacher-alice-001",
			Name:               "Dr. Alice Meridian",
			Rating:             4.9,
			Experience:         8,
			MaxStudentsPerSlot: 4,
			AvailableSlots:     []string{"Mon 4-5 PM", "Wed 3-4 PM"},
			PreferredGrades:    []int{6, 7, 8, 9, 10},
			CurrentStudents: map[string][]string{
				"Mon 4-5 PM": {"student-101", "student-102"},
			},
		},
		{
			ID:                 "teacher-bob-002",
			Name:               "Mr. Bob Roberts",
			Rating:             4.7,
			Experience:         5,
			MaxStudentsPerSlot: 6,
			AvailableSlots:     []string{"Tue 11 AM-12 PM", "Thu 2-3 PM"},
			PreferredGrades:    []int{1, 2, 3, 4, 5},
			CurrentStudents: map[string][]string{
				"Thu 2-3 PM": {"student-201"},
			},
		},
		{
			ID:                 "teacher-carla-003",
			Name:               "Ms. Carla Nguyen",
			Rating:             4.5,
			Experience:         4,
			MaxStudentsPerSlot: 3,
			AvailableSlots:     []string{"Mon 9-10 AM", "Fri 1-2 PM"},
			PreferredGrades:    []int{3, 4, 5, 6},
			CurrentStudents:    map[string][]string{},
		},
		{
			ID:                 "teacher-david-004",
			Name:               "Mr. David Okafor",
			Rating:             4.8,
			Experience:         7,
			MaxStudentsPerSlot: 5,
			AvailableSlots:     []string{"Wed 5-6 PM", "Sat 10-11 AM"},
			PreferredGrades:    []int{7, 8, 9, 10},
			CurrentStudents: map[string][]string{
				"Sat 10-11 AM": {"student-301", "student-302", "student-303", "student-304", "student-305"},
			},
		},
	}
}

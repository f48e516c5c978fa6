package corpus

// Sample returns the built-in fallback corpus used when no jobs file is
// configured or the configured one cannot be loaded. The set is fixed at 15
// postings so the engine stays testable without external data.
func Sample() *Corpus {
	items := []*JobPosting{
		{
			ID:          "12345",
			Title:       "Junior Full Stack Developer",
			Company:     "Dialog Axiata PLC",
			Location:    "Colombo",
			Description: "Looking for a talented developer with React Node.js MongoDB experience. Build modern web applications using JavaScript Python MySQL Git Docker.",
			URL:         "https://topjobs.lk/job/12345",
			ClosingDate: "2024-03-15",
			SalaryRange: "LKR 60,000 - 80,000",
		},
		{
			ID:          "12346",
			Title:       "Software Engineer Intern",
			Company:     "IFS - Sri Lanka",
			Location:    "Colombo 03",
			Description: "Entry-level position for graduates. Work with Java Python SQL Spring Boot Docker Kubernetes. Learn microservices architecture REST API development.",
			URL:         "https://topjobs.lk/job/12346",
			ClosingDate: "2024-03-20",
			SalaryRange: "LKR 45,000 - 55,000",
		},
		{
			ID:          "12347",
			Title:       "Frontend Developer",
			Company:     "Virtusa Corporation",
			Location:    "Colombo 07",
			Description: "Create stunning user interfaces with React JavaScript TypeScript HTML5 CSS3. Experience with Angular Vue.js is a plus. Work on enterprise applications.",
			URL:         "https://topjobs.lk/job/12347",
			ClosingDate: "2024-03-18",
			SalaryRange: "LKR 55,000 - 75,000",
		},
		{
			ID:          "12348",
			Title:       "Backend Developer Trainee",
			Company:     "WSO2 (Private) Limited",
			Location:    "Colombo 05",
			Description: "Join our backend team. Work with Java Node.js MySQL MongoDB. Build REST API GraphQL microservices. Learn Agile Scrum methodologies.",
			URL:         "https://topjobs.lk/job/12348",
			ClosingDate: "2024-03-22",
			SalaryRange: "LKR 50,000 - 65,000",
		},
		{
			ID:          "12349",
			Title:       "UI/UX Developer",
			Company:     "CodeGen International",
			Location:    "Colombo 02",
			Description: "Design and develop user interfaces. Skills needed: HTML5 CSS3 JavaScript React Figma Adobe XD. Create responsive web designs.",
			URL:         "https://topjobs.lk/job/12349",
			ClosingDate: "2024-03-25",
			SalaryRange: "LKR 50,000 - 70,000",
		},
		{
			ID:          "12350",
			Title:       "Mobile App Developer Intern",
			Company:     "hSenid Mobile Solutions",
			Location:    "Colombo 08",
			Description: "Build mobile applications using React Native Flutter Android iOS. JavaScript TypeScript experience required. Work on cutting-edge mobile projects.",
			URL:         "https://topjobs.lk/job/12350",
			ClosingDate: "2024-03-19",
			SalaryRange: "LKR 40,000 - 50,000",
		},
		{
			ID:          "12351",
			Title:       "DevOps Engineer Trainee",
			Company:     "Sysco LABS",
			Location:    "Colombo",
			Description: "Learn DevOps practices. Work with Docker Kubernetes AWS Azure Jenkins Git GitHub. Automate deployment pipelines and cloud infrastructure.",
			URL:         "https://topjobs.lk/job/12351",
			ClosingDate: "2024-03-28",
			SalaryRange: "LKR 55,000 - 70,000",
		},
		{
			ID:          "12352",
			Title:       "Java Developer",
			Company:     "99X Technology",
			Location:    "Colombo 03",
			Description: "Develop enterprise applications using Java Spring Boot MySQL PostgreSQL. Experience with Microservices REST API Agile methodologies required.",
			URL:         "https://topjobs.lk/job/12352",
			ClosingDate: "2024-03-30",
			SalaryRange: "LKR 65,000 - 85,000",
		},
		{
			ID:          "12353",
			Title:       "Python Developer",
			Company:     "Pearson Lanka",
			Location:    "Colombo 05",
			Description: "Build scalable applications with Python Django Flask. Work with PostgreSQL MongoDB Redis. Experience with REST API Docker is preferred.",
			URL:         "https://topjobs.lk/job/12353",
			ClosingDate: "2024-04-02",
			SalaryRange: "LKR 60,000 - 80,000",
		},
		{
			ID:          "12354",
			Title:       "Full Stack JavaScript Developer",
			Company:     "Axiata Digital Labs",
			Location:    "Colombo",
			Description: "Work with full JavaScript stack: React Angular Vue.js Node.js Express MongoDB. Build modern web applications using Agile JIRA Git.",
			URL:         "https://topjobs.lk/job/12354",
			ClosingDate: "2024-04-05",
			SalaryRange: "LKR 70,000 - 90,000",
		},
		{
			ID:          "12355",
			Title:       "QA Engineer Intern",
			Company:     "Zone24x7",
			Location:    "Colombo 07",
			Description: "Learn software testing methodologies. Manual and automated testing with Selenium. Basic programming knowledge in Java Python JavaScript required.",
			URL:         "https://topjobs.lk/job/12355",
			ClosingDate: "2024-03-16",
			SalaryRange: "LKR 40,000 - 55,000",
		},
		{
			ID:          "12356",
			Title:       "React Developer",
			Company:     "Fortude (Pvt) Ltd",
			Location:    "Colombo",
			Description: "Expert in React JavaScript TypeScript HTML5 CSS3. Build component libraries and SPAs. Redux state management experience is essential.",
			URL:         "https://topjobs.lk/job/12356",
			ClosingDate: "2024-03-21",
			SalaryRange: "LKR 65,000 - 85,000",
		},
		{
			ID:          "12357",
			Title:       "Android Developer",
			Company:     "Mobitel (Pvt) Ltd",
			Location:    "Colombo 02",
			Description: "Develop native Android applications using Java Kotlin. Experience with Firebase REST API Git. Knowledge of Flutter is a plus.",
			URL:         "https://topjobs.lk/job/12357",
			ClosingDate: "2024-04-08",
			SalaryRange: "LKR 60,000 - 80,000",
		},
		{
			ID:          "12358",
			Title:       "Cloud Engineer Trainee",
			Company:     "Cambio Software Engineering",
			Location:    "Colombo",
			Description: "Learn cloud technologies AWS Azure Google Cloud. Work with Docker Kubernetes Terraform. Basic Linux Python knowledge required.",
			URL:         "https://topjobs.lk/job/12358",
			ClosingDate: "2024-04-10",
			SalaryRange: "LKR 50,000 - 70,000",
		},
		{
			ID:          "12359",
			Title:       "Data Engineer Intern",
			Company:     "Informatics Institute",
			Location:    "Colombo 06",
			Description: "Work with data pipelines ETL processes. Skills: Python SQL MySQL PostgreSQL MongoDB. Experience with data visualization tools preferred.",
			URL:         "https://topjobs.lk/job/12359",
			ClosingDate: "2024-04-12",
			SalaryRange: "LKR 45,000 - 60,000",
		},
	}

	for _, posting := range items {
		posting.Skills = ExtractSkills(posting.Description)
	}

	return &Corpus{Items: items}
}

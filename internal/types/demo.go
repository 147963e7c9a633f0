package types

func bullets(lines ...string) Bullets {
	out := make(Bullets, len(lines))
	for i, l := range lines {
		out[i] = Text(l)
	}
	return out
}

// DemoDocument returns the sample résumé offered by "load demo".
func DemoDocument() *Document {
	zelda := Bullets{
		{
			{Text: "Explored methods to generate video game dungeons based off of "},
			{Text: "The Legend of Zelda", Italic: true},
		},
	}
	zelda = append(zelda, bullets(
		"Developed a game in Java to test the generated dungeons",
		"Contributed 50K+ lines of code to an established codebase via Git",
		"Conducted a human subject study to determine which video game dungeon generation technique is enjoyable",
		"Wrote an 8-page paper and gave multiple presentations on-campus",
		"Presented virtually to the World Conference on Computational Intelligence",
	)...)

	return &Document{
		Header: Header{
			Name:            "Jake Ryan",
			Phone:           "123-456-7890",
			Email:           "jake@su.edu",
			LinkedInKind:    "LinkedIn",
			LinkedIn:        "https://linkedin.com/in/...",
			LinkedInDisplay: "linkedin.com/in/jake",
			GitHubKind:      "GitHub",
			GitHub:          "https://github.com/...",
			GitHubDisplay:   "github.com/jake",
		},
		Sections: []Section{
			{
				ID: "education", Title: "Education", Kind: KindEducation,
				Entries: []Entry{
					EducationEntry{
						School:   "Southwestern University",
						Location: "Georgetown, TX",
						Degree:   "Bachelor of Arts in Computer Science, Minor in Business",
						Dates:    "Aug. 2018 -- May 2021",
						Body:     Segments{},
					},
					EducationEntry{
						School:   "Blinn College",
						Location: "Bryan, TX",
						Degree:   "Associate's in Liberal Arts",
						Dates:    "Aug. 2014 -- May 2018",
						Body:     Segments{},
					},
				},
			},
			{
				ID: "experience", Title: "Experience", Kind: KindExperience,
				Entries: []Entry{
					ExperienceEntry{
						Role:     "Undergraduate Research Assistant",
						Dates:    "June 2020 -- Present",
						Org:      "Texas A&M University",
						Location: "College Station, TX",
						Bullets: bullets(
							"Developed a REST API using FastAPI and PostgreSQL to store data from learning management systems",
							"Developed a full-stack web application using Flask, React, PostgreSQL and Docker to analyze GitHub data",
							"Explored ways to visualize GitHub collaboration in a classroom setting",
						),
					},
					ExperienceEntry{
						Role:     "Information Technology Support Specialist",
						Dates:    "Sep. 2018 -- Present",
						Org:      "Southwestern University",
						Location: "Georgetown, TX",
						Bullets: bullets(
							"Communicate with managers to set up campus computers used on campus",
							"Assess and troubleshoot computer problems brought by students, faculty and staff",
							"Maintain upkeep of computers, classroom equipment, and 200 printers across campus",
						),
					},
					ExperienceEntry{
						Role:     "Artificial Intelligence Research Assistant",
						Dates:    "May 2019 -- July 2019",
						Org:      "Southwestern University",
						Location: "Georgetown, TX",
						Bullets:  zelda,
					},
				},
			},
			{
				ID: "projects", Title: "Projects", Kind: KindProjects,
				Entries: []Entry{
					ProjectEntry{
						Title: "Gitlytics",
						Stack: "Python, Flask, React, PostgreSQL, Docker",
						Dates: "June 2020 -- Present",
						Bullets: bullets(
							"Developed a full-stack web application using with Flask serving a REST API with React as the frontend",
							"Implemented GitHub OAuth to get data from user's repositories",
							"Visualized GitHub data to show collaboration",
							"Used Celery and Redis for asynchronous tasks",
						),
					},
					ProjectEntry{
						Title: "Simple Paintball",
						Stack: "Spigot API, Java, Maven, TravisCI, Git",
						Dates: "May 2018 -- May 2020",
						Bullets: bullets(
							"Developed a Minecraft server plugin to entertain kids during free time for a previous job",
							"Published plugin to websites gaining 2K+ downloads and an average 4.5/5-star review",
							"Implemented continuous delivery using TravisCI to build the plugin upon new a release",
							"Collaborated with Minecraft server administrators to suggest features and get feedback about the plugin",
						),
					},
				},
			},
			{
				ID: "technical_skills", Title: "Technical Skills", Kind: KindSkills,
				Entries: []Entry{
					SkillEntry{Label: "Languages", Value: Text("Java, Python, C/C++, SQL (Postgres), JavaScript, HTML/CSS, R")},
					SkillEntry{Label: "Frameworks", Value: Text("React, Node.js, Flask, JUnit, WordPress, Material-UI, FastAPI")},
					SkillEntry{Label: "Developer Tools", Value: Text("Git, Docker, TravisCI, Google Cloud Platform, VS Code, Visual Studio, PyCharm, IntelliJ, Eclipse")},
					SkillEntry{Label: "Libraries", Value: Text("pandas, NumPy, Matplotlib")},
				},
			},
		},
	}
}

package seed

import (
	"github.com/trezcool/unirepo/core/material"
	"github.com/trezcool/unirepo/core/project"
	"github.com/trezcool/unirepo/core/supervision"
	"github.com/trezcool/unirepo/core/user"
)

// DemoPassword is the password of every demo account.
const DemoPassword = "password123"

type (
	userEntry struct {
		id, email, name, role, department, studentID, staffID string
	}

	materialEntry struct {
		id, title, author, typ, year, description string
		keywords                                  []string
		downloads                                 int
		uploadedBy                                string
	}

	projectEntry struct {
		title, description, status string
	}

	citationEntry struct {
		materialID      string
		projectIdx      int // position in the seeded projects partition
		isValidated     bool
		validatedBy     string
		validationNotes string
	}

	supervisionEntry struct {
		supervisorID, studentID, status string
	}
)

var demoUsers = []userEntry{
	{id: "1", email: "student@unijos.edu.ng", name: "John Doe", role: user.RoleStudent, department: "Computer Science", studentID: "CS/2020/001"},
	{id: "2", email: "staff@unijos.edu.ng", name: "Dr. Sarah Johnson", role: user.RoleStaff, department: "Computer Science", staffID: "STAFF/CS/001"},
	{id: "3", email: "admin@unijos.edu.ng", name: "Admin User", role: user.RoleAdmin, department: "Administration"},
}

var catalog = []materialEntry{
	{
		id: "1", title: "Advanced Data Structures and Algorithms", author: "Dr. Johnson Smith", typ: material.TypeBook, year: "2023",
		description: "Comprehensive guide to advanced data structures including trees, graphs, and hash tables.",
		keywords:    []string{"data structures", "algorithms", "computer science", "programming"},
		downloads:   234, uploadedBy: "admin",
	},
	{
		id: "2", title: "Machine Learning Applications in Agriculture", author: "Prof. Mary Adebayo", typ: material.TypeJournal, year: "2024",
		description: "Research on applying machine learning techniques to improve agricultural productivity.",
		keywords:    []string{"machine learning", "agriculture", "AI", "farming", "productivity"},
		downloads:   156, uploadedBy: "admin",
	},
	{
		id: "3", title: "Sustainable Development in Nigeria", author: "Dr. Ibrahim Hassan", typ: material.TypeArticle, year: "2023",
		description: "Analysis of sustainable development practices and challenges in Nigeria.",
		keywords:    []string{"sustainable development", "Nigeria", "environment", "policy"},
		downloads:   89, uploadedBy: "admin",
	},
	{
		id: "4", title: "Database Management Systems: Theory and Practice", author: "Prof. Sarah Johnson", typ: material.TypeBook, year: "2023",
		description: "Complete reference for modern database design and implementation.",
		keywords:    []string{"database", "SQL", "DBMS", "data management"},
		downloads:   445, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "5", title: "Artificial Intelligence in Healthcare", author: "Dr. Michael Chen", typ: material.TypeJournal, year: "2024",
		description: "Exploring AI applications in medical diagnosis and treatment.",
		keywords:    []string{"AI", "healthcare", "medical", "diagnosis"},
		downloads:   298, uploadedBy: "admin",
	},
	{
		id: "6", title: "Software Engineering Best Practices", author: "Prof. David Wilson", typ: material.TypeBook, year: "2023",
		description: "Industry standards and methodologies for software development.",
		keywords:    []string{"software engineering", "agile", "development", "methodology"},
		downloads:   367, uploadedBy: "admin",
	},
	{
		id: "7", title: "Cybersecurity Fundamentals", author: "Dr. Lisa Brown", typ: material.TypeBook, year: "2024",
		description: "Essential concepts in information security and cyber defense.",
		keywords:    []string{"cybersecurity", "security", "encryption", "network security"},
		downloads:   521, uploadedBy: "admin",
	},
	{
		id: "8", title: "Web Development with React and Node.js", author: "Prof. James Taylor", typ: material.TypeBook, year: "2024",
		description: "Modern web development using React frontend and Node.js backend.",
		keywords:    []string{"web development", "React", "Node.js", "JavaScript"},
		downloads:   612, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "9", title: "Mobile App Development with Flutter", author: "Dr. Emily Davis", typ: material.TypeBook, year: "2024",
		description: "Cross-platform mobile app development using Flutter framework.",
		keywords:    []string{"mobile development", "Flutter", "Dart", "cross-platform"},
		downloads:   389, uploadedBy: "admin",
	},
	{
		id: "10", title: "Cloud Computing Architecture", author: "Prof. Robert Lee", typ: material.TypeBook, year: "2023",
		description: "Designing scalable cloud-based systems and infrastructure.",
		keywords:    []string{"cloud computing", "AWS", "Azure", "architecture"},
		downloads:   445, uploadedBy: "admin",
	},
	{
		id: "11", title: "Structural Analysis in Civil Engineering", author: "Prof. Ahmed Musa", typ: material.TypeBook, year: "2023",
		description: "Advanced methods for analyzing structural systems and loads.",
		keywords:    []string{"structural analysis", "civil engineering", "construction", "mechanics"},
		downloads:   234, uploadedBy: "admin",
	},
	{
		id: "12", title: "Renewable Energy Systems Design", author: "Dr. Fatima Abdullahi", typ: material.TypeJournal, year: "2024",
		description: "Design principles for solar, wind, and hydroelectric systems.",
		keywords:    []string{"renewable energy", "solar power", "wind energy", "sustainability"},
		downloads:   456, uploadedBy: "admin",
	},
	{
		id: "13", title: "Materials Science and Engineering", author: "Prof. John Okafor", typ: material.TypeBook, year: "2023",
		description: "Properties and applications of engineering materials.",
		keywords:    []string{"materials science", "engineering", "metallurgy", "composites"},
		downloads:   378, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "14", title: "Electrical Circuit Analysis", author: "Dr. Grace Okwu", typ: material.TypeBook, year: "2024",
		description: "Fundamental principles of electrical circuit analysis and design.",
		keywords:    []string{"electrical engineering", "circuits", "electronics", "analysis"},
		downloads:   567, uploadedBy: "admin",
	},
	{
		id: "15", title: "Mechanical Design and Manufacturing", author: "Prof. Peter Nwankwo", typ: material.TypeBook, year: "2023",
		description: "Principles of mechanical system design and manufacturing processes.",
		keywords:    []string{"mechanical engineering", "design", "manufacturing", "CAD"},
		downloads:   423, uploadedBy: "admin",
	},
	{
		id: "16", title: "Strategic Management in Nigerian Context", author: "Prof. Adaora Eze", typ: material.TypeBook, year: "2024",
		description: "Strategic planning and management practices for Nigerian businesses.",
		keywords:    []string{"strategic management", "business", "Nigeria", "planning"},
		downloads:   298, uploadedBy: "admin",
	},
	{
		id: "17", title: "Digital Marketing Strategies", author: "Dr. Kemi Adebayo", typ: material.TypeBook, year: "2024",
		description: "Modern digital marketing techniques and social media strategies.",
		keywords:    []string{"digital marketing", "social media", "advertising", "branding"},
		downloads:   512, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "18", title: "Financial Management Principles", author: "Prof. Tunde Bakare", typ: material.TypeBook, year: "2023",
		description: "Core concepts in corporate finance and investment analysis.",
		keywords:    []string{"finance", "investment", "corporate finance", "analysis"},
		downloads:   389, uploadedBy: "admin",
	},
	{
		id: "19", title: "Entrepreneurship and Innovation", author: "Dr. Blessing Okoro", typ: material.TypeBook, year: "2024",
		description: "Building successful startups and fostering innovation culture.",
		keywords:    []string{"entrepreneurship", "innovation", "startup", "business development"},
		downloads:   445, uploadedBy: "admin",
	},
	{
		id: "20", title: "Human Resource Management", author: "Prof. Chioma Uche", typ: material.TypeBook, year: "2023",
		description: "Modern HR practices and organizational behavior.",
		keywords:    []string{"human resources", "management", "organizational behavior", "leadership"},
		downloads:   334, uploadedBy: "admin",
	},
	{
		id: "21", title: "Advanced Organic Chemistry", author: "Prof. Moses Danladi", typ: material.TypeBook, year: "2024",
		description: "Comprehensive study of organic chemical reactions and mechanisms.",
		keywords:    []string{"organic chemistry", "reactions", "mechanisms", "synthesis"},
		downloads:   267, uploadedBy: "admin",
	},
	{
		id: "22", title: "Molecular Biology Techniques", author: "Dr. Ruth Yakubu", typ: material.TypeJournal, year: "2024",
		description: "Modern techniques in molecular biology and genetic analysis.",
		keywords:    []string{"molecular biology", "genetics", "DNA", "laboratory techniques"},
		downloads:   398, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "23", title: "Physics of Semiconductor Devices", author: "Prof. Daniel Gyang", typ: material.TypeBook, year: "2023",
		description: "Physical principles underlying semiconductor device operation.",
		keywords:    []string{"semiconductor physics", "electronics", "quantum mechanics", "devices"},
		downloads:   456, uploadedBy: "admin",
	},
	{
		id: "24", title: "Environmental Chemistry and Pollution", author: "Dr. Mary Pam", typ: material.TypeArticle, year: "2024",
		description: "Chemical processes in environmental systems and pollution control.",
		keywords:    []string{"environmental chemistry", "pollution", "environmental science", "remediation"},
		downloads:   223, uploadedBy: "admin",
	},
	{
		id: "25", title: "Mathematical Methods in Physics", author: "Prof. Joseph Dung", typ: material.TypeBook, year: "2023",
		description: "Advanced mathematical techniques for physics applications.",
		keywords:    []string{"mathematical physics", "calculus", "differential equations", "physics"},
		downloads:   345, uploadedBy: "admin",
	},
	{
		id: "26", title: "Clinical Pathology and Diagnostics", author: "Dr. Stella Pwajok", typ: material.TypeBook, year: "2024",
		description: "Modern approaches to clinical diagnosis and pathological analysis.",
		keywords:    []string{"clinical pathology", "diagnostics", "medicine", "laboratory medicine"},
		downloads:   412, uploadedBy: "admin",
	},
	{
		id: "27", title: "Public Health in Developing Countries", author: "Prof. Emmanuel Choji", typ: material.TypeJournal, year: "2024",
		description: "Public health challenges and solutions in developing nations.",
		keywords:    []string{"public health", "developing countries", "epidemiology", "health policy"},
		downloads:   289, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "28", title: "Pharmacology and Drug Development", author: "Dr. Rebecca Dung", typ: material.TypeBook, year: "2023",
		description: "Principles of pharmacology and modern drug discovery processes.",
		keywords:    []string{"pharmacology", "drug development", "medicine", "therapeutics"},
		downloads:   356, uploadedBy: "admin",
	},
	{
		id: "29", title: "Sustainable Agriculture Practices", author: "Prof. Yakubu Dogon-Yaro", typ: material.TypeBook, year: "2024",
		description: "Sustainable farming techniques for improved productivity.",
		keywords:    []string{"sustainable agriculture", "farming", "crop production", "sustainability"},
		downloads:   378, uploadedBy: "admin",
	},
	{
		id: "30", title: "Food Science and Technology", author: "Dr. Hawa Muazu", typ: material.TypeBook, year: "2023",
		description: "Food processing, preservation, and safety technologies.",
		keywords:    []string{"food science", "food technology", "food safety", "processing"},
		downloads:   445, uploadedBy: "admin",
	},
	{
		id: "31", title: "Nigerian Political Economy", author: "Prof. Samson Mancha", typ: material.TypeBook, year: "2024",
		description: "Analysis of Nigeria's political and economic systems.",
		keywords:    []string{"political economy", "Nigeria", "politics", "economics"},
		downloads:   234, uploadedBy: "admin",
	},
	{
		id: "32", title: "African Literature and Culture", author: "Dr. Joy Kwanga", typ: material.TypeBook, year: "2023",
		description: "Collection of contemporary African literary works and cultural studies.",
		keywords:    []string{"African literature", "culture", "humanities", "literature"},
		downloads:   198, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "33", title: "Educational Psychology", author: "Prof. Comfort Dogo", typ: material.TypeBook, year: "2024",
		description: "Psychological principles in educational settings and learning.",
		keywords:    []string{"educational psychology", "learning", "education", "psychology"},
		downloads:   312, uploadedBy: "admin",
	},
	{
		id: "34", title: "Sociology of Development", author: "Dr. Philip Dachung", typ: material.TypeBook, year: "2023",
		description: "Sociological perspectives on development and social change.",
		keywords:    []string{"sociology", "development", "social change", "society"},
		downloads:   267, uploadedBy: "admin",
	},
	{
		id: "35", title: "Impact of Climate Change on Agriculture in Northern Nigeria", author: "Ibrahim Sani (MSc Thesis)", typ: material.TypeThesis, year: "2024",
		description: "Research on climate change effects on agricultural productivity.",
		keywords:    []string{"climate change", "agriculture", "Nigeria", "research"},
		downloads:   156, uploadedBy: "student@unijos.edu.ng",
	},
	{
		id: "36", title: "Blockchain Technology in Supply Chain Management", author: "Grace Okechukwu (PhD Dissertation)", typ: material.TypeThesis, year: "2024",
		description: "Application of blockchain in improving supply chain transparency.",
		keywords:    []string{"blockchain", "supply chain", "technology", "management"},
		downloads:   289, uploadedBy: "student@unijos.edu.ng",
	},
	{
		id: "37", title: "Mental Health Awareness Among University Students", author: "Fatima Bello (BSc Project)", typ: material.TypeThesis, year: "2023",
		description: "Study on mental health awareness and support systems.",
		keywords:    []string{"mental health", "students", "psychology", "awareness"},
		downloads:   198, uploadedBy: "student@unijos.edu.ng",
	},
	{
		id: "38", title: "Renewable Energy Potential in Plateau State", author: "John Mallo (MSc Thesis)", typ: material.TypeThesis, year: "2024",
		description: "Assessment of solar and wind energy potential in Plateau State.",
		keywords:    []string{"renewable energy", "Plateau State", "solar energy", "wind energy"},
		downloads:   234, uploadedBy: "student@unijos.edu.ng",
	},
	{
		id: "39", title: "Digital Banking Adoption in Nigeria", author: "Blessing Choji (MBA Project)", typ: material.TypeThesis, year: "2024",
		description: "Analysis of factors affecting digital banking adoption.",
		keywords:    []string{"digital banking", "fintech", "adoption", "Nigeria"},
		downloads:   345, uploadedBy: "student@unijos.edu.ng",
	},
	{
		id: "40", title: "Laboratory Safety Guidelines for Research", author: "University Safety Committee", typ: material.TypeConferencePaper, year: "2024",
		description: "Comprehensive safety guidelines for laboratory work.",
		keywords:    []string{"safety", "laboratory", "guidelines", "research"},
		downloads:   567, uploadedBy: "admin",
	},
	{
		id: "41", title: "Research Methodology in Academic Writing", author: "Graduate School", typ: material.TypeConferencePaper, year: "2023",
		description: "Guidelines for conducting academic research.",
		keywords:    []string{"research methodology", "academic writing", "research", "guidelines"},
		downloads:   678, uploadedBy: "admin",
	},
	{
		id: "42", title: "Student Academic Policies and Procedures", author: "Academic Affairs Office", typ: material.TypeArticle, year: "2024",
		description: "Complete guide to academic policies and procedures.",
		keywords:    []string{"academic policies", "procedures", "students", "guidelines"},
		downloads:   789, uploadedBy: "admin",
	},
	{
		id: "43", title: "Artificial Intelligence in Education: Opportunities and Challenges", author: "Dr. Samuel Pwaveno", typ: material.TypeJournal, year: "2024",
		description: "Comprehensive review of AI applications in educational settings.",
		keywords:    []string{"artificial intelligence", "education", "technology", "learning"},
		downloads:   423, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "44", title: "Nanotechnology Applications in Medicine", author: "Prof. Martha Dalyop", typ: material.TypeJournal, year: "2024",
		description: "Recent advances in medical nanotechnology applications.",
		keywords:    []string{"nanotechnology", "medicine", "healthcare", "innovation"},
		downloads:   356, uploadedBy: "admin",
	},
	{
		id: "45", title: "Internet of Things in Smart Cities", author: "Dr. Victor Pam", typ: material.TypeArticle, year: "2024",
		description: "IoT implementation strategies for smart city development.",
		keywords:    []string{"IoT", "smart cities", "urban planning", "technology"},
		downloads:   298, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "46", title: "Quantum Computing Fundamentals", author: "Prof. Bitrus Shuaibu", typ: material.TypeBook, year: "2024",
		description: "Introduction to quantum computing principles and applications.",
		keywords:    []string{"quantum computing", "physics", "computing", "quantum mechanics"},
		downloads:   445, uploadedBy: "admin",
	},
	{
		id: "47", title: "Data Analytics for Business Intelligence", author: "Dr. Rahila Muhammad", typ: material.TypeBook, year: "2024",
		description: "Using data analytics for business decision making.",
		keywords:    []string{"data analytics", "business intelligence", "data science", "analysis"},
		downloads:   567, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "48", title: "Robotics and Automation Engineering", author: "Prof. Sunday Gyang", typ: material.TypeBook, year: "2023",
		description: "Principles of robotics design and industrial automation.",
		keywords:    []string{"robotics", "automation", "engineering", "manufacturing"},
		downloads:   389, uploadedBy: "admin",
	},
	{
		id: "49", title: "Biomedical Engineering Applications", author: "Dr. Esther Davou", typ: material.TypeJournal, year: "2024",
		description: "Modern applications of engineering in medical devices.",
		keywords:    []string{"biomedical engineering", "medical devices", "healthcare", "technology"},
		downloads:   234, uploadedBy: "admin",
	},
	{
		id: "50", title: "Geoinformatics and Remote Sensing", author: "Prof. Yakubu Kigbu", typ: material.TypeBook, year: "2024",
		description: "Geographic information systems and remote sensing techniques.",
		keywords:    []string{"GIS", "remote sensing", "geoinformatics", "mapping"},
		downloads:   312, uploadedBy: "admin",
	},
	{
		id: "51", title: "Green Chemistry and Sustainable Processes", author: "Dr. Comfort Pwantu", typ: material.TypeArticle, year: "2024",
		description: "Environmentally friendly chemical processes and green chemistry.",
		keywords:    []string{"green chemistry", "sustainability", "environmental chemistry", "processes"},
		downloads:   278, uploadedBy: "staff@unijos.edu.ng",
	},
	{
		id: "52", title: "Financial Technology and Digital Banking", author: "Prof. Godwin Pam", typ: material.TypeBook, year: "2024",
		description: "Impact of fintech on traditional banking systems.",
		keywords:    []string{"fintech", "digital banking", "financial technology", "innovation"},
		downloads:   456, uploadedBy: "admin",
	},
}

// owned by the demo student and supervised by the demo staff
var demoProjects = []projectEntry{
	{
		title:       "AI-Powered Student Performance Prediction System",
		description: "Development of a machine learning system to predict student academic performance based on various factors.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Solar Energy Management System for Rural Communities",
		description: "Design and implementation of a smart solar energy management system for off-grid rural communities.",
		status:      project.StatusApproved,
	},
	{
		title:       "Blockchain-Based Voting System",
		description: "Secure electronic voting system using blockchain technology for transparent elections.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Mobile Health App for Diabetes Management",
		description: "Cross-platform mobile application for diabetes patients to track glucose levels and medication.",
		status:      project.StatusDraft,
	},
	{
		title:       "Smart Irrigation System Using IoT",
		description: "Internet of Things based automated irrigation system for precision agriculture.",
		status:      project.StatusSubmitted,
	},
	{
		title:       "E-Learning Platform for Remote Education",
		description: "Comprehensive e-learning management system with video conferencing and assessment tools.",
		status:      project.StatusApproved,
	},
	{
		title:       "Waste Management Optimization Using Machine Learning",
		description: "ML algorithms to optimize waste collection routes and recycling processes.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Cryptocurrency Price Prediction Model",
		description: "Deep learning model for predicting cryptocurrency price movements using sentiment analysis.",
		status:      project.StatusDraft,
	},
	{
		title:       "Automated Traffic Management System",
		description: "AI-powered traffic light control system to reduce congestion in urban areas.",
		status:      project.StatusSubmitted,
	},
	{
		title:       "Telemedicine Platform for Rural Healthcare",
		description: "Web-based telemedicine platform connecting rural patients with urban healthcare providers.",
		status:      project.StatusApproved,
	},
	{
		title:       "Smart Home Energy Monitoring System",
		description: "IoT-based system for monitoring and optimizing household energy consumption.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Natural Language Processing for Local Languages",
		description: "NLP tools and models for processing Nigerian local languages.",
		status:      project.StatusDraft,
	},
	{
		title:       "Drone-Based Crop Monitoring System",
		description: "Autonomous drone system for monitoring crop health using computer vision.",
		status:      project.StatusSubmitted,
	},
	{
		title:       "Digital Library Management System",
		description: "Comprehensive digital library system with advanced search and recommendation features.",
		status:      project.StatusApproved,
	},
	{
		title:       "Augmented Reality Education App",
		description: "AR application for interactive learning in science and engineering subjects.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Water Quality Monitoring Network",
		description: "Sensor network for real-time monitoring of water quality parameters.",
		status:      project.StatusDraft,
	},
	{
		title:       "Cloud-Based Hospital Management System",
		description: "Scalable cloud-based system for managing hospital operations and patient records.",
		status:      project.StatusSubmitted,
	},
	{
		title:       "Machine Learning for Medical Image Analysis",
		description: "Deep learning models for automated analysis of medical imaging data.",
		status:      project.StatusApproved,
	},
	{
		title:       "Smart Parking Management System",
		description: "IoT-enabled parking management with mobile app integration.",
		status:      project.StatusUnderReview,
	},
	{
		title:       "Biometric Authentication Security System",
		description: "Multi-modal biometric authentication system for enhanced security.",
		status:      project.StatusDraft,
	},
}

var demoCitations = []citationEntry{
	{materialID: "1", projectIdx: 0, isValidated: true, validatedBy: "2", validationNotes: "Good source for data structures research"},
	{materialID: "2", projectIdx: 0, isValidated: true, validatedBy: "2"},
	{materialID: "12", projectIdx: 1, isValidated: true, validatedBy: "2", validationNotes: "Relevant for solar energy project"},
	{materialID: "36", projectIdx: 2},
}

var demoSupervisions = []supervisionEntry{
	{supervisorID: "2", studentID: "1", status: supervision.StatusActive},
}

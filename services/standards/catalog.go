package standards

// Subjects lists the subject areas offered by the CPALMS search
// interface.
var Subjects = []string{
	"English Language Arts (B.E.S.T.)",
	"Mathematics (B.E.S.T.)",
	"Science",
	"Social Studies",
	"Health Education",
	"Physical Education",
	"Visual Art",
	"Music",
	"Theatre",
	"Dance",
	"World Languages",
	"Computer Science (Starting 2025-2026)",
}

// Grades is the ordered K-12 grade enumeration.
var Grades = []string{"K", "1", "2", "3", "4", "5", "6", "7", "8", "9", "10", "11", "12"}

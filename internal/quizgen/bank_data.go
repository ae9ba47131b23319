package quizgen

// Subject identifiers for the built-in banks.
const (
	SubjectMathematics = "mathematics"
	SubjectComputerSci = "computer_science"
	SubjectPhysics     = "physics"
	SubjectLiterature  = "literature"
)

// Subjects lists the bank subjects in stable order.
var Subjects = []string{
	SubjectMathematics,
	SubjectComputerSci,
	SubjectPhysics,
	SubjectLiterature,
}

// bankQuestion is the storage form of a curated question.
type bankQuestion struct {
	text        string
	options     [OptionCount]string
	correct     int
	explanation string
	topic       string
}

func (b bankQuestion) toQuestion(subject string, difficulty Difficulty) Question {
	return Question{
		Text:        b.text,
		Options:     b.options[:],
		Correct:     b.correct,
		Explanation: b.explanation,
		Topic:       b.topic,
		Subject:     subject,
		Difficulty:  difficulty,
	}
}

// questionBanks holds the curated questions per subject and difficulty.
var questionBanks = map[string]map[Difficulty][]bankQuestion{
	SubjectMathematics: {
		DifficultyEasy: {
			{
				text:        "What is 15% of 200?",
				options:     [OptionCount]string{"20", "25", "30", "35"},
				correct:     2,
				explanation: "15% of 200 = 0.15 x 200 = 30",
				topic:       "Percentages",
			},
			{
				text:        "What is the area of a rectangle with length 8 and width 5?",
				options:     [OptionCount]string{"40", "13", "26", "35"},
				correct:     0,
				explanation: "Area = length x width = 8 x 5 = 40",
				topic:       "Basic Geometry",
			},
			{
				text:        "Solve: 3x + 7 = 16",
				options:     [OptionCount]string{"x = 2", "x = 3", "x = 4", "x = 5"},
				correct:     1,
				explanation: "3x = 16 - 7 = 9, so x = 3",
				topic:       "Basic Algebra",
			},
			{
				text:        "What is 45 / 9?",
				options:     [OptionCount]string{"4", "5", "6", "7"},
				correct:     1,
				explanation: "45 / 9 = 5",
				topic:       "Basic Division",
			},
		},
		DifficultyMedium: {
			{
				text:        "What is the derivative of x^2 + 3x?",
				options:     [OptionCount]string{"2x + 3", "x^2 + 3", "2x", "3x"},
				correct:     0,
				explanation: "Using the power rule: d/dx(x^2) = 2x and d/dx(3x) = 3",
				topic:       "Calculus",
			},
			{
				text:        "Find the limit of (x^2 - 4)/(x - 2) as x approaches 2",
				options:     [OptionCount]string{"2", "4", "0", "Undefined"},
				correct:     1,
				explanation: "Factor: (x+2)(x-2)/(x-2) = x+2, so the limit is 4",
				topic:       "Limits",
			},
			{
				text:        "What is the slope of the line y = 3x + 2?",
				options:     [OptionCount]string{"2", "3", "5", "1"},
				correct:     1,
				explanation: "In y = mx + b form, m is the slope, so the slope is 3",
				topic:       "Linear Equations",
			},
		},
		DifficultyHard: {
			{
				text:        "Solve the differential equation dy/dx = 2y",
				options:     [OptionCount]string{"y = Ce^(2x)", "y = C + 2x", "y = 2Ce^x", "y = Ce^x"},
				correct:     0,
				explanation: "Separable equation: dy/y = 2dx, ln|y| = 2x + C",
				topic:       "Differential Equations",
			},
			{
				text:        "What is the integral of 2x dx?",
				options:     [OptionCount]string{"x^2 + C", "2x^2 + C", "x + C", "2 + C"},
				correct:     0,
				explanation: "The antiderivative of 2x is x^2, plus the constant of integration",
				topic:       "Integration",
			},
		},
	},
	SubjectComputerSci: {
		DifficultyEasy: {
			{
				text:        "What does CPU stand for?",
				options:     [OptionCount]string{"Central Processing Unit", "Computer Processing Unit", "Central Program Unit", "Computer Program Unit"},
				correct:     0,
				explanation: "CPU stands for Central Processing Unit",
				topic:       "Computer Basics",
			},
			{
				text:        "Which of these is a programming language?",
				options:     [OptionCount]string{"HTML", "Python", "CSS", "HTTP"},
				correct:     1,
				explanation: "Python is a general-purpose programming language",
				topic:       "Programming Languages",
			},
			{
				text:        "What is binary code made of?",
				options:     [OptionCount]string{"0s and 1s", "Letters", "Numbers 1-9", "Symbols"},
				correct:     0,
				explanation: "Binary code uses only 0s and 1s",
				topic:       "Computer Basics",
			},
		},
		DifficultyMedium: {
			{
				text:        "What is the time complexity of binary search?",
				options:     [OptionCount]string{"O(n)", "O(log n)", "O(n^2)", "O(1)"},
				correct:     1,
				explanation: "Binary search halves the search space each iteration",
				topic:       "Algorithms",
			},
			{
				text:        "Which data structure uses the LIFO principle?",
				options:     [OptionCount]string{"Queue", "Stack", "Array", "Linked List"},
				correct:     1,
				explanation: "A stack is Last In, First Out",
				topic:       "Data Structures",
			},
			{
				text:        "What does SQL stand for?",
				options:     [OptionCount]string{"Structured Query Language", "Simple Query Language", "Standard Query Language", "System Query Language"},
				correct:     0,
				explanation: "SQL stands for Structured Query Language",
				topic:       "Databases",
			},
		},
		DifficultyHard: {
			{
				text:        "What is the worst-case time complexity of QuickSort?",
				options:     [OptionCount]string{"O(n log n)", "O(n^2)", "O(n)", "O(log n)"},
				correct:     1,
				explanation: "QuickSort degrades to O(n^2) when the pivot is always the smallest or largest element",
				topic:       "Advanced Algorithms",
			},
			{
				text:        "Which design pattern ensures a class has only one instance?",
				options:     [OptionCount]string{"Factory", "Observer", "Singleton", "Strategy"},
				correct:     2,
				explanation: "The Singleton pattern restricts a class to a single instance",
				topic:       "Design Patterns",
			},
		},
	},
	SubjectPhysics: {
		DifficultyEasy: {
			{
				text:        "What is the unit of force in the SI system?",
				options:     [OptionCount]string{"Joule", "Watt", "Newton", "Pascal"},
				correct:     2,
				explanation: "The SI unit of force is the Newton (N)",
				topic:       "Units and Measurements",
			},
			{
				text:        "What is the speed of light in vacuum?",
				options:     [OptionCount]string{"3 x 10^8 m/s", "3 x 10^6 m/s", "3 x 10^10 m/s", "3 x 10^9 m/s"},
				correct:     0,
				explanation: "The speed of light in vacuum is approximately 3 x 10^8 m/s",
				topic:       "Constants",
			},
		},
		DifficultyMedium: {
			{
				text:        "What is the acceleration due to gravity on Earth?",
				options:     [OptionCount]string{"9.8 m/s^2", "10 m/s^2", "9.81 m/s^2", "9.0 m/s^2"},
				correct:     2,
				explanation: "Standard gravitational acceleration is approximately 9.81 m/s^2",
				topic:       "Mechanics",
			},
			{
				text:        "What is Newton's second law of motion?",
				options:     [OptionCount]string{"F = ma", "E = mc^2", "P = mv", "W = Fd"},
				correct:     0,
				explanation: "Newton's second law states that force equals mass times acceleration",
				topic:       "Classical Mechanics",
			},
		},
		DifficultyHard: {
			{
				text:        "What is Schrodinger's equation used for?",
				options:     [OptionCount]string{"Classical mechanics", "Quantum mechanics", "Thermodynamics", "Electromagnetism"},
				correct:     1,
				explanation: "Schrodinger's equation describes quantum mechanical systems",
				topic:       "Quantum Physics",
			},
			{
				text:        "Which relation expresses the Heisenberg uncertainty principle?",
				options:     [OptionCount]string{"dx dp >= h/2", "E = hf", "lambda = h/p", "F = qE"},
				correct:     0,
				explanation: "The uncertainty principle bounds the product of position and momentum uncertainty",
				topic:       "Quantum Physics",
			},
		},
	},
	SubjectLiterature: {
		DifficultyEasy: {
			{
				text:        "Who wrote 'Romeo and Juliet'?",
				options:     [OptionCount]string{"Charles Dickens", "William Shakespeare", "Jane Austen", "Mark Twain"},
				correct:     1,
				explanation: "Romeo and Juliet was written by William Shakespeare",
				topic:       "Classic Literature",
			},
			{
				text:        "What is a haiku?",
				options:     [OptionCount]string{"A type of novel", "A Japanese poem", "A play", "An essay"},
				correct:     1,
				explanation: "A haiku is a traditional Japanese poem with 17 syllables",
				topic:       "Poetry",
			},
		},
		DifficultyMedium: {
			{
				text:        "What literary device is 'The wind whispered through the trees'?",
				options:     [OptionCount]string{"Metaphor", "Simile", "Personification", "Alliteration"},
				correct:     2,
				explanation: "Personification gives human characteristics to non-human things",
				topic:       "Literary Devices",
			},
			{
				text:        "Who wrote '1984'?",
				options:     [OptionCount]string{"George Orwell", "Aldous Huxley", "Ray Bradbury", "H.G. Wells"},
				correct:     0,
				explanation: "1984 was written by George Orwell",
				topic:       "Modern Literature",
			},
		},
		DifficultyHard: {
			{
				text:        "In which novel does the character Jay Gatsby appear?",
				options:     [OptionCount]string{"To Kill a Mockingbird", "The Great Gatsby", "1984", "Pride and Prejudice"},
				correct:     1,
				explanation: "Jay Gatsby is the protagonist of F. Scott Fitzgerald's 'The Great Gatsby'",
				topic:       "American Literature",
			},
			{
				text:        "What is stream of consciousness in literature?",
				options:     [OptionCount]string{"A poetic form", "A narrative technique", "A literary movement", "A type of meter"},
				correct:     1,
				explanation: "Stream of consciousness presents thoughts as they occur",
				topic:       "Literary Techniques",
			},
		},
	},
}

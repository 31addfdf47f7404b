package repositories

import "github.com/SAP-F-2025/adaptive-tutor-service/internal/models"

func seed(id uint, topic models.Topic, difficulty int, examType, prompt string, options []string, correct int, explanation string) *models.Question {
	return &models.Question{
		ID:          id,
		Prompt:      prompt,
		Options:     options,
		Correct:     models.IntPtr(correct),
		Topic:       string(topic),
		Difficulty:  difficulty,
		Explanation: explanation,
		ExamType:    examType,
	}
}

// SeedQuestions returns a fresh copy of the built-in C programming bank.
func SeedQuestions() []*models.Question {
	return []*models.Question{
		seed(1, models.TopicBasicC, 1, "quiz",
			"Which header file declares printf()?",
			[]string{"<stdlib.h>", "<stdio.h>", "<string.h>", "<math.h>"}, 1,
			"printf and scanf are declared in <stdio.h>, the standard input/output header."),
		seed(2, models.TopicBasicC, 1, "quiz",
			"What is the value of 7 / 2 when both operands are int?",
			[]string{"3.5", "4", "3", "3.0"}, 2,
			"Integer division truncates toward zero, so 7 / 2 evaluates to 3."),
		seed(3, models.TopicBasicC, 2, "quiz",
			"Which format specifier prints a double with printf()?",
			[]string{"%d", "%c", "%lf or %f", "%s"}, 2,
			"printf promotes float to double; %f prints a double and %lf is accepted as well."),
		seed(4, models.TopicBasicC, 3, "midsem",
			"What does the expression 5 % 3 evaluate to?",
			[]string{"1", "2", "0", "1.66"}, 1,
			"The modulus operator returns the remainder of integer division: 5 = 1*3 + 2."),
		seed(5, models.TopicControlStructures, 1, "quiz",
			"Which keyword exits a switch case in C?",
			[]string{"exit", "return", "break", "continue"}, 2,
			"Without break, execution falls through into the next case label."),
		seed(6, models.TopicControlStructures, 2, "quiz",
			"What does this print? int x = 0; if (x = 5) printf(\"yes\"); else printf(\"no\");",
			[]string{"yes", "no", "compile error", "nothing"}, 0,
			"x = 5 is an assignment whose value is 5, which is non-zero and therefore true."),
		seed(7, models.TopicControlStructures, 3, "midsem",
			"In a switch without break statements, what happens after the matching case runs?",
			[]string{"The switch ends", "Execution falls through to the following cases", "The default case runs only", "A runtime error occurs"}, 1,
			"Case labels are entry points; control continues through later cases until a break or the end of the switch."),
		seed(8, models.TopicLoops, 1, "quiz",
			"How many times does for (int i = 0; i < 5; i++) execute its body?",
			[]string{"4", "5", "6", "Infinite"}, 1,
			"i takes the values 0 through 4, which is five iterations."),
		seed(9, models.TopicLoops, 2, "quiz",
			"Which loop always executes its body at least once?",
			[]string{"for", "while", "do-while", "None of them"}, 2,
			"do-while checks its condition after the body, so the body runs at least once."),
		seed(10, models.TopicLoops, 3, "midsem",
			"What is printed? int i = 10; while (i > 0) i -= 3; printf(\"%d\", i);",
			[]string{"0", "1", "-2", "-1"}, 2,
			"i goes 10, 7, 4, 1, -2 and the loop stops once i is no longer positive."),
		seed(11, models.TopicLoops, 4, "endsem",
			"How many times is the inner statement executed? for (i = 0; i < 4; i++) for (j = i; j < 4; j++) s++;",
			[]string{"16", "10", "8", "6"}, 1,
			"The inner loop runs 4 + 3 + 2 + 1 = 10 times across all outer iterations."),
		seed(12, models.TopicArraysStrings, 2, "midsem",
			"What is the index of the last element in int a[10]?",
			[]string{"10", "9", "11", "1"}, 1,
			"C arrays are zero-indexed, so a[10] has valid indices 0 through 9."),
		seed(13, models.TopicArraysStrings, 3, "midsem",
			"What does strlen(\"hello\") return?",
			[]string{"4", "5", "6", "Undefined"}, 1,
			"strlen counts characters up to but not including the terminating null byte."),
		seed(14, models.TopicArraysStrings, 4, "endsem",
			"How many bytes does char s[] = \"abc\"; occupy?",
			[]string{"3", "4", "2", "8"}, 1,
			"The array holds the three characters plus the terminating '\\0'."),
		seed(15, models.TopicFunctionsRecursion, 2, "midsem",
			"How are arguments passed to C functions by default?",
			[]string{"By reference", "By value", "By name", "By pointer only"}, 1,
			"C always passes copies of argument values; pointers are used to emulate pass-by-reference."),
		seed(16, models.TopicFunctionsRecursion, 3, "midsem",
			"What does f(4) return? int f(int n) { return n <= 1 ? 1 : n * f(n - 1); }",
			[]string{"10", "24", "12", "4"}, 1,
			"f computes the factorial: 4 * 3 * 2 * 1 = 24."),
		seed(17, models.TopicFunctionsRecursion, 5, "endsem",
			"How many calls does fib(4) make in total with the naive recursive definition?",
			[]string{"5", "7", "9", "8"}, 2,
			"fib(4) calls fib(3) and fib(2); expanding the call tree gives 9 calls including the first."),
		seed(18, models.TopicPointersMemory, 3, "endsem",
			"If int x = 5; int *p = &x; what is *p?",
			[]string{"The address of x", "5", "The address of p", "Undefined"}, 1,
			"Dereferencing p yields the value stored at the address it holds, which is x."),
		seed(19, models.TopicPointersMemory, 4, "endsem",
			"Given int a[] = {1, 2, 3}; int *p = a; what is *(p + 2)?",
			[]string{"1", "2", "3", "Address of a[2]"}, 2,
			"Pointer arithmetic advances in element-sized steps, so p + 2 points at a[2]."),
		seed(20, models.TopicPointersMemory, 5, "endsem",
			"Which function releases memory obtained from malloc()?",
			[]string{"delete", "release", "free", "dealloc"}, 2,
			"free() returns a heap block allocated by malloc, calloc or realloc."),
		seed(21, models.TopicNumberSystems, 2, "midsem",
			"What is the decimal value of binary 1011?",
			[]string{"9", "11", "13", "10"}, 1,
			"1011 = 8 + 0 + 2 + 1 = 11."),
		seed(22, models.TopicNumberSystems, 3, "midsem",
			"What is 0x1F in decimal?",
			[]string{"31", "15", "32", "17"}, 0,
			"0x1F = 1*16 + 15 = 31."),
		seed(23, models.TopicPatternPrinting, 3, "endsem",
			"How many stars does a right triangle pattern of 5 rows print in total?",
			[]string{"5", "10", "15", "25"}, 2,
			"Row i prints i stars, so the total is 1 + 2 + 3 + 4 + 5 = 15."),
		seed(24, models.TopicAdvancedProgramming, 4, "endsem",
			"Which storage class keeps a local variable's value between calls?",
			[]string{"auto", "register", "static", "extern"}, 2,
			"A static local is initialised once and retains its value across invocations."),
		seed(25, models.TopicAdvancedProgramming, 5, "endsem",
			"What is sizeof(struct { char c; int i; }) on a typical 32-bit-int platform?",
			[]string{"5", "8", "6", "4"}, 1,
			"Padding aligns the int to a 4-byte boundary, giving 1 + 3 padding + 4 = 8 bytes."),
	}
}

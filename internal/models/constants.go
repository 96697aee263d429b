package models

// contains all valid quiz difficulties (in lowercase)
var ValidDifficulties = map[string]bool{
	"junior":       true,
	"intermediate": true,
	"senior":       true,
}

// contains all valid question kinds
var ValidQuestionKinds = map[string]bool{
	"multiple_choice": true,
	"open_ended":      true,
}

const DefaultDifficulty = "intermediate"

func ValidDifficultiesList() []string {
	return []string{"junior", "intermediate", "senior"}
}

package app

// ErrorClassification is the consumer-facing message and severity for a group of
// transaction response reason codes.
type ErrorClassification struct {
	Codes   []int
	Level   Level
	Message string
}

var transactionErrorTable = []ErrorClassification{
	{
		Codes:   []int{11},
		Level:   LevelInfo,
		Message: "A duplicate transaction has been submitted. Please use a different payment method or try again in 5 minutes.",
	},
	{
		Codes:   []int{2, 3, 4, 41, 44, 45, 65, 165, 191, 250, 251, 254},
		Level:   LevelInfo,
		Message: "This transaction has been declined. Please try again with a different credit card.",
	},
	{
		Codes:   []int{252, 253},
		Level:   LevelError,
		Message: "The transaction was accepted, but is being held for review. Please wait until your transaction is approved or rejected.",
	},
	{
		Codes:   []int{27},
		Level:   LevelWarn,
		Message: "Please check your payment details again. The transaction was declined because of incorrect details.",
	},
	{
		Codes:   []int{6, 37, 315},
		Level:   LevelInfo,
		Message: "The credit card number is invalid.",
	},
	{
		Codes:   []int{8, 317},
		Level:   LevelInfo,
		Message: "The credit card has expired.",
	},
}

var transactionErrorsByCode = indexClassifications(transactionErrorTable)

func indexClassifications(table []ErrorClassification) map[int]ErrorClassification {
	idx := make(map[int]ErrorClassification)
	for _, c := range table {
		for _, code := range c.Codes {
			idx[code] = c
		}
	}
	return idx
}

// Classify returns the classification for a transaction error code. Uncommon codes have
// none; callers then fall back to the gateway's own text.
func Classify(code int) (ErrorClassification, bool) {
	c, ok := transactionErrorsByCode[code]
	return c, ok
}

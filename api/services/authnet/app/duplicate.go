package app

import "regexp"

var digitRun = regexp.MustCompile(`[0-9]+`)

// extractDuplicateProfileID pulls the existing customer profile id out of an E00039
// message such as "A duplicate record with ID 123456 already exists." The API does not
// return the id in a structured field for this error.
func extractDuplicateProfileID(text string) (string, bool) {
	id := digitRun.FindString(text)
	return id, id != ""
}

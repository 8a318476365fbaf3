package repositories

import "strings"

// likeEscaper prepares raw search input for a LIKE pattern. Backslash is the
// ESCAPE character in the stores' queries, so it and the LIKE wildcards must
// be escaped to match literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern builds a case-insensitive substring LIKE pattern that treats
// % and _ in the search input as plain characters.
func likePattern(search string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
}

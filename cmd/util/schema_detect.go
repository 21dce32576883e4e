package util

import (
	"bufio"
	"strings"
)

const schemaHeaderPrefix = "-- Dumped from schema: "

// DetectSchema extracts the schema name from the "-- Dumped from schema:
// <name>" line of a pgschema dump header. Only the first 20 lines are
// scanned. It returns "" when there is no such line.
func DetectSchema(sql string) string {
	scanner := bufio.NewScanner(strings.NewReader(sql))
	for i := 0; i < 20 && scanner.Scan(); i++ {
		line := scanner.Text()
		if strings.HasPrefix(line, schemaHeaderPrefix) {
			return strings.TrimSpace(line[len(schemaHeaderPrefix):])
		}
	}
	return ""
}

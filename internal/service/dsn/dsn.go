package dsn

import (
	"fmt"
	"os"
)

// dsnParams must include clientFoundRows: the conditional-update paths
// (balance debit, status transition, delivered ack) read RowsAffected as
// "rows matched", and without CLIENT_FOUND_ROWS the driver reports rows
// changed, so a zero-delta update on an existing row would look like a
// missing or underfunded one.
const dsnParams = "charset=utf8mb4&parseTime=True&loc=Local&clientFoundRows=true"

// FromEnv builds the MySQL DSN from environment variables.
func FromEnv() string {
	host := os.Getenv("DB_HOST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT")
	user := os.Getenv("DB_USER")
	pass := os.Getenv("DB_PASS")
	dbname := os.Getenv("DB_NAME")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbname, dsnParams)
}

func FromEnvE2E() string {
	host := os.Getenv("DB_HOST_TEST")
	if host == "" {
		return ""
	}
	port := os.Getenv("DB_PORT_TEST")
	user := os.Getenv("DB_USER_TEST")
	pass := os.Getenv("DB_PASS_TEST")
	dbname := os.Getenv("DB_NAME_TEST")

	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", user, pass, host, port, dbname, dsnParams)
}

package main

import (
	"github.com/ribgsilva/notes-service/app/cmd/schema"
	"os"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"
)

func listCommands() {
	println("Usage: cmd <command> [options]")
	println("Commands")
	println("\tschema\t\t\t- Manage the notes table, see schema help")
	println("\thelp\t\t\t- Print the commands available")
}

func main() {
	if len(os.Args) < 2 {
		listCommands()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "schema":
		if !schema.Run(os.Args[2:]) {
			os.Exit(1)
		}
	case "help":
		listCommands()
	default:
		listCommands()
		os.Exit(1)
	}
}

package main

import (
	"log"
	"os"
)

const usage = `usage: coursectl <command> [args]

commands:
  units
  projects <unit>
  submissions <unit> <project>
  upload <unit> <project> <file.zip>
  generate <unit> <project> <submission-id>...
  template <unit> <project>
  students <unit>
  collaborators <unit>`

func main() {
	if len(os.Args) < 2 {
		log.Fatal(usage)
	}

	if err := run(os.Args[1], os.Args[2:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// Command ethcal converts dates between the Ethiopian and Gregorian
// calendars and serves the conversion API.
package main

import (
	"context"
	"os"

	"github.com/abiywondimu5758/ethiopian-date-converter/internal/cli"
)

func main() {
	os.Exit(cli.Execute(context.Background()))
}

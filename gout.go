//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/timburks/gout/commander"
	"github.com/timburks/gout/editor"
	"github.com/timburks/gout/screen"
)

func main() {

	var script string

	for i := 1; i < len(os.Args); i++ {
		argi := os.Args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(os.Args) {
				script = os.Args[i]
			} else {
				log.Output(1, "No file specified for --eval option")
				return
			}
		default:
			fmt.Fprintf(os.Stderr, "usage: gout [--eval script]\n")
			return
		}
	}

	// The editor manages the outline document.
	e := editor.NewEditor()

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if script != "" {
		// Run a gout script, print the outline, and exit.
		_, err := c.ParseEvalFile(script)
		if err != nil {
			log.Output(1, err.Error())
			return
		}
		fmt.Print(e.OutlineString())
	} else {
		// Create a screen to manage display.
		s := screen.NewScreen()
		defer s.Close()

		// Open a log file.
		f, err := os.OpenFile(os.Getenv("HOME")+"/.goutlog", os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			log.Output(1, err.Error())
			return
		}
		log.SetOutput(f)
		defer f.Close()

		// Run the main event loop.
		for c.IsRunning() {
			s.Render(e, c)
			err = c.ProcessEvent(s.GetNextEvent())
			if err != nil {
				log.Output(1, err.Error())
			}
		}
	}
}

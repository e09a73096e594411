// Package console is the line-oriented front end: it prints the exploration
// as it happens and reads the player's decisions from a terminal or any reader.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jwebster45206/detective-quest/internal/theme"
	"github.com/jwebster45206/detective-quest/pkg/explore"
	"github.com/jwebster45206/detective-quest/pkg/judge"
	"github.com/jwebster45206/detective-quest/pkg/ledger"
	"github.com/jwebster45206/detective-quest/pkg/textfilter"
	"github.com/muesli/reflow/wordwrap"
)

const (
	ActionPrompt     = "Action (e) go LEFT, (d) go RIGHT, (s) STOP and judge: "
	AccusationPrompt = "Who do you accuse?"

	// Nobody is accused when the input ends before an accusation is read.
	Nobody = "nobody"
)

// Console reads player input line by line and writes the transcript.
type Console struct {
	in    *bufio.Reader
	out   io.Writer
	width int
}

// Ensure Console can drive and observe an exploration
var (
	_ explore.ActionSource = (*Console)(nil)
	_ explore.Reporter     = (*Console)(nil)
)

func New(in io.Reader, out io.Writer, width int) *Console {
	if width < 20 {
		width = 80
	}
	return &Console{
		in:    bufio.NewReader(in),
		out:   out,
		width: width,
	}
}

func (c *Console) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	_, _ = fmt.Fprintln(c.out, wordwrap.String(s, c.width))
}

func (c *Console) separator() {
	c.println(theme.Info.Render(strings.Repeat("-", min(c.width, 51))))
}

func (c *Console) banner(title string) {
	rule := strings.Repeat("=", min(c.width, 52))
	c.println(theme.Title.Render(rule))
	c.println(theme.Title.Render(title))
	c.println(theme.Title.Render(rule))
}

// Welcome prints the opening banner.
func (c *Console) Welcome() {
	c.banner("      WELCOME TO DETECTIVE QUEST: THE MANSION\n" +
		fmt.Sprintf("      Collect %d clues to accuse the culprit.", judge.MinimumEvidence))
}

// readLine returns the next line without its terminator. A final line with
// no terminator is returned before io.EOF.
func (c *Console) readLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return textfilter.Line(line), nil
		}
		return "", err
	}
	return textfilter.Line(line), nil
}

// NextAction prompts for a direction and returns the raw line.
func (c *Console) NextAction(_ context.Context) (string, error) {
	c.printf("%s", theme.Prompt.Render(ActionPrompt))
	line, err := c.readLine()
	if err != nil {
		c.printf("\n")
		return "", err
	}
	return line, nil
}

// Report prints one exploration event.
func (c *Console) Report(_ context.Context, e explore.Event) {
	switch e.Type {
	case explore.EventRoomEntered:
		c.printf("\n")
		c.println("[Exploring] You are in: " + theme.Room.Render(e.Room))
		c.separator()
	case explore.EventClueCollected:
		c.println(theme.Clue.Render(fmt.Sprintf("CLUE FOUND: '%s' which points to: %s", e.Clue, e.Suspect)))
		c.separator()
	case explore.EventClueDuplicate:
		c.println(theme.Info.Render(fmt.Sprintf("[INFO] '%s' is already in your notebook.", e.Clue)))
		c.separator()
	case explore.EventClueUnresolved:
		c.println(theme.Info.Render("[INFO] This room has no more clues to collect."))
		c.separator()
	case explore.EventNoClue:
		c.println(theme.Info.Render("[INFO] No clue to collect in this room."))
		c.separator()
	case explore.EventNoRoom:
		c.println(theme.Warn.Render("[WARNING] There is no room in that direction. Choose another action."))
	case explore.EventInvalidAction:
		c.println(theme.Error.Render("[ERROR] Invalid action."))
	case explore.EventExplorationDone:
		c.printf("\n")
		c.println("Exploration finished. Moving on to the judgment phase...")
	}
}

// PrintEvidence lists the collected clues in the order given.
func (c *Console) PrintEvidence(records []ledger.Record) {
	c.printf("\n\n")
	c.println(theme.Title.Render("=============== JUDGMENT PHASE ==============="))
	c.println("Collected clues (alphabetical order):")
	if len(records) == 0 {
		c.println(theme.Info.Render("  (no clues collected)"))
	}
	for _, r := range records {
		c.println(fmt.Sprintf("  - %-25s (Points to: %s)", r.Clue, r.Suspect))
	}
	c.separator()
}

// ReadAccusation prompts for a suspect and returns the line read. It returns
// Nobody when the input is exhausted.
func (c *Console) ReadAccusation(suspects []string) string {
	prompt := AccusationPrompt
	if len(suspects) > 0 {
		prompt += " (" + strings.Join(suspects, ", ") + ")"
	}
	c.printf("%s", theme.Prompt.Render(prompt+": "))

	line, err := c.readLine()
	if err != nil {
		c.printf("\n")
		return Nobody
	}
	return line
}

// PrintVerdict reports the judgment.
func (c *Console) PrintVerdict(v judge.Verdict) {
	c.printf("\n")
	c.println(theme.Title.Render("--- FINAL EVIDENCE CHECK ---"))
	c.println("Accused suspect: " + v.Accused)
	c.println(fmt.Sprintf("Clues against the accused: %d", v.Evidence))
	c.printf("\n")

	if v.Solved {
		c.println(theme.Clue.Render("*** CASE CLOSED! ***"))
		c.println(fmt.Sprintf("The accusation against %s is supported by %d pieces of evidence. Detective Quest is victorious!",
			v.Accused, v.Evidence))
		return
	}
	c.println(theme.Error.Render("!!! ACCUSATION FAILED !!!"))
	c.println(fmt.Sprintf("At least %d clues are needed to support the accusation. The culprit escaped!", v.Threshold))
}

// Goodbye prints the closing line.
func (c *Console) Goodbye() {
	c.printf("\n")
	c.println("Case file closed. Program finished.")
}

package main

import (
	"fmt"
	"math"
	"strconv"

	"github.com/Nydauron/wcif/parsers"
	"github.com/Nydauron/wcif/prompts"
	"github.com/Nydauron/wcif/rounds"
	"github.com/Nydauron/wcif/wcif"
	"github.com/Nydauron/wcif/writers"
	"github.com/urfave/cli/v2"
	"go.uber.org/zap"
)

const (
	publicFlag  = "public"
	eventFlag   = "event"
	compareFlag = "compare"
	csvFlag     = "csv"
	roundFlag   = "round"
	roundFormat = "round-format"
	nameFlag    = "name"
	dateFlag    = "date"
)

func (e *env) write(cCtx *cli.Context, v any) error {
	outputWriter := writers.Open(cCtx.String(outputFlag), e.stdout)
	if err := encode(outputWriter, cCtx.String(formatFlag), v); err != nil {
		outputWriter.Close()
		return cli.Exit(fmt.Sprintf("Encoding to %s failed: %v", cCtx.String(formatFlag), err), exitEncode)
	}
	if err := outputWriter.Close(); err != nil {
		return cli.Exit(fmt.Sprintf("Encoding to %s failed on close: %v", cCtx.String(formatFlag), err), exitEncode)
	}
	return nil
}

func singleArg(cCtx *cli.Context, what string) (string, error) {
	if cCtx.NArg() != 1 {
		return "", fmt.Errorf("expected exactly one %s, got %d arguments", what, cCtx.NArg())
	}
	return cCtx.Args().First(), nil
}

func inspectCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "inspect",
		Usage: "Decode a WCIF document, summarize it and write it back out",
		Flags: []cli.Flag{
			inputFlagValue("The URL or path to the WCIF JSON document"),
			outputFlagValue(),
			formatFlagValue(),
			&cli.BoolFlag{
				Name:  publicFlag,
				Usage: "Drop the fields only visible to organizers",
			},
		},
		Action: func(cCtx *cli.Context) error {
			body, err := openInput(cCtx.Context, e.log, cCtx.String(inputFlag), "application/json; charset=utf-8")
			if err != nil {
				return cli.Exit(err, exitFetch)
			}
			defer body.Close()

			competition, err := wcif.Decode(body)
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			activities := 0
			competition.Schedule.Walk(func(*wcif.Activity) { activities++ })
			roundCount := 0
			for _, event := range competition.Events {
				roundCount += len(event.Rounds)
			}
			e.log.Info("decoded competition",
				zap.String("id", competition.ID),
				zap.Int("persons", len(competition.Persons)),
				zap.Int("events", len(competition.Events)),
				zap.Int("rounds", roundCount),
				zap.Int("activities", activities),
			)

			if cCtx.Bool(publicFlag) {
				competition = competition.Public()
			}
			return e.write(cCtx, competition)
		},
	}
}

func resultCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "result",
		Usage:     "Display an encoded attempt result",
		ArgsUsage: "[--] <value>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  eventFlag,
				Usage: "The event the result belongs to; selects time, move count or multiblind display",
				Value: string(wcif.Event333),
			},
		},
		Action: func(cCtx *cli.Context) error {
			arg, err := singleArg(cCtx, "result value")
			if err != nil {
				return err
			}
			event, err := wcif.ParseEventID(cCtx.String(eventFlag))
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			n, err := strconv.ParseInt(arg, 10, 64)
			if err != nil {
				return cli.Exit(fmt.Errorf("%w: %q", wcif.ErrNotANumber, arg), exitParse)
			}
			result, err := wcif.NewTimeResult(n)
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			e.log.Debug("decoded result", zap.Stringer("kind", result.Kind()), zap.Stringer("event", event))
			fmt.Fprintln(e.stdout, event.FormatResult(result))
			return nil
		},
	}
}

type activityReport struct {
	Code       string  `json:"code" yaml:"code"`
	Official   bool    `json:"official" yaml:"official"`
	Deprecated bool    `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Event      string  `json:"event,omitempty" yaml:"event,omitempty"`
	Round      *uint32 `json:"round,omitempty" yaml:"round,omitempty"`
	Group      *uint32 `json:"group,omitempty" yaml:"group,omitempty"`
	Attempt    *uint8  `json:"attempt,omitempty" yaml:"attempt,omitempty"`
	Compared   string  `json:"compared,omitempty" yaml:"compared,omitempty"`
	Relation   string  `json:"relation,omitempty" yaml:"relation,omitempty"`
}

func describeActivity(code wcif.ActivityCode) activityReport {
	report := activityReport{Code: code.String(), Official: code.IsOfficial(), Deprecated: code.Deprecated()}
	switch u := code.Unofficial.(type) {
	case nil:
		c := code.Official
		report.Event, report.Round, report.Group, report.Attempt = string(c.Event), c.Round, c.Group, c.Attempt
	case wcif.UnofficialEvent:
		c := u.Code
		report.Event, report.Round, report.Group, report.Attempt = string(c.Event), c.Round, c.Group, c.Attempt
	}
	return report
}

// relation describes how a relates to b in the specificity order.
func relation(a, b wcif.ActivityCode) string {
	order, ok := a.Compare(b)
	switch {
	case !ok:
		return "incomparable"
	case order < 0:
		return "contains"
	case order > 0:
		return "contained in"
	}
	return "equal"
}

func activityCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "activity",
		Usage:     "Parse an activity code and optionally compare it with another",
		ArgsUsage: "<code>",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  compareFlag,
				Usage: "A second activity code to compare against",
			},
			formatFlagValue(),
		},
		Action: func(cCtx *cli.Context) error {
			arg, err := singleArg(cCtx, "activity code")
			if err != nil {
				return err
			}
			code, err := wcif.ParseActivityCode(arg)
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			report := describeActivity(code)
			if other := cCtx.String(compareFlag); other != "" {
				otherCode, err := wcif.ParseActivityCode(other)
				if err != nil {
					return cli.Exit(err, exitParse)
				}
				report.Compared = otherCode.String()
				report.Relation = relation(code, otherCode)
			}
			if report.Deprecated {
				e.log.Warn("activity code uses a deprecated unofficial form", zap.String("code", report.Code))
			}
			return e.write(cCtx, report)
		},
	}
}

type wcaIDReport struct {
	ID           string `json:"id" yaml:"id"`
	Year         uint16 `json:"year" yaml:"year"`
	Name         string `json:"name" yaml:"name"`
	Discriminant uint8  `json:"discriminant" yaml:"discriminant"`
}

func wcaIDCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:      "wcaid",
		Usage:     "Parse a WCA ID",
		ArgsUsage: "<id>",
		Flags:     []cli.Flag{formatFlagValue()},
		Action: func(cCtx *cli.Context) error {
			arg, err := singleArg(cCtx, "WCA ID")
			if err != nil {
				return err
			}
			id, err := wcif.ParseWCAID(arg)
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			return e.write(cCtx, wcaIDReport{ID: id.String(), Year: id.Year, Name: id.Name, Discriminant: id.Discriminant})
		},
	}
}

func importCommand(e *env) *cli.Command {
	return &cli.Command{
		Name:  "import",
		Usage: "Build a WCIF document from a round results table; missing details are prompted for",
		Flags: []cli.Flag{
			inputFlagValue("The URL or path to the HTML (or CSV) file containing the results table"),
			&cli.BoolFlag{
				Name:  csvFlag,
				Usage: "File passed in is a CSV rather than an HTML file",
			},
			&cli.StringFlag{
				Name:  eventFlag,
				Usage: "Event id or name of the round",
			},
			&cli.UintFlag{
				Name:  roundFlag,
				Usage: "Round number",
			},
			&cli.StringFlag{
				Name:  roundFormat,
				Usage: "Round format (1, 2, 3, a, m)",
			},
			&cli.StringFlag{
				Name:  nameFlag,
				Usage: "Competition name",
				Value: "Imported Competition",
			},
			&cli.StringFlag{
				Name:  dateFlag,
				Usage: "Competition date (YYYY-MM-DD)",
			},
			outputFlagValue(),
			formatFlagValue(),
		},
		Action: func(cCtx *cli.Context) error {
			body, err := openInput(cCtx.Context, e.log, cCtx.String(inputFlag), "text/html; charset=UTF-8")
			if err != nil {
				return cli.Exit(err, exitFetch)
			}
			defer body.Close()

			// The event decides how attempt cells are read.
			id, format, date, err := importDetails(cCtx, e.prompt)
			if err != nil {
				return cli.Exit(err, exitParse)
			}

			var table *parsers.Table
			if cCtx.Bool(csvFlag) {
				table, err = parsers.ParseCSV(body, id.Event)
			} else {
				table, err = parsers.ParseHTML(body, id.Event)
			}
			if err != nil {
				return cli.Exit(fmt.Sprintf("Results table could not be read: %v", err), exitParse)
			}
			e.log.Debug("parsed results table", zap.Int("rows", len(table.Rows)))
			round, err := rounds.Build(*table, id, format)
			if err != nil {
				return cli.Exit(err, exitParse)
			}
			e.log.Info("built round", zap.Stringer("round", id), zap.Int("results", len(round.Results)))
			return e.write(cCtx, rounds.Document(cCtx.String(nameFlag), date, *table, round))
		},
	}
}

// importDetails takes the round and date from flags, prompting for the
// ones that were not given.
func importDetails(cCtx *cli.Context, p *prompts.Prompter) (wcif.RoundID, wcif.RoundFormat, wcif.Date, error) {
	var id wcif.RoundID
	var err error
	if s := cCtx.String(eventFlag); s != "" {
		event, ok := prompts.LookupEvent(s)
		if !ok {
			return id, "", wcif.Date{}, fmt.Errorf("unknown event %q", s)
		}
		id.Event = event
	} else if id.Event, err = p.EventPrompt(); err != nil {
		return id, "", wcif.Date{}, err
	}

	if n := cCtx.Uint(roundFlag); n > math.MaxUint32 {
		return id, "", wcif.Date{}, fmt.Errorf("round %d is out of range", n)
	} else if n > 0 {
		id.Round = uint32(n)
	} else if id.Round, err = p.RoundPrompt(); err != nil {
		return id, "", wcif.Date{}, err
	}

	var format wcif.RoundFormat
	if s := cCtx.String(roundFormat); s != "" {
		if format, err = wcif.ParseRoundFormat(s); err != nil {
			return id, "", wcif.Date{}, err
		}
	} else if format, err = p.RoundFormatPrompt(id.Event); err != nil {
		return id, "", wcif.Date{}, err
	}

	var date wcif.Date
	if s := cCtx.String(dateFlag); s != "" {
		date, err = wcif.ParseDate(s)
	} else {
		date, err = p.DatePrompt()
	}
	return id, format, date, err
}

package main

import (
	"fmt"
	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/hscells/inst"
	"github.com/hscells/inst/eval"
	"github.com/hscells/inst/output"
	"github.com/hscells/inst/trec"
	"github.com/pkg/errors"
	"log"
	"os"
	"strings"
)

var (
	name    = "inst_eval"
	version = "19.Oct.2026"
)

type args struct {
	QrelsFile   string   `help:"TREC style qrel file" arg:"positional,required"`
	ResultsFile string   `help:"TREC style results file" arg:"positional,required"`
	Complete    bool     `help:"Same as -c in trec_eval: average over the complete set of queries in the relevance judgements; missing queries contribute 0" arg:"-c,--complete_qrel_queries"`
	Depth       *int     `help:"Max depth to evaluate at" arg:"-n,--eval_depth"`
	PerQuery    bool     `help:"Print out per query evaluation result" arg:"-q,--per_query"`
	TPerQuery   string   `help:"Tab separated file indicating value of T for each query: QueryId<tab>T (also -tpq)" arg:"--T_per_query"`
	OverwriteT  *float64 `help:"Set all T values to supplied constant" arg:"-T,--over_write_T"`
	Graded      bool     `help:"Use graded gains scaled by the largest relevance level" arg:"-g,--graded"`
	Format      string   `help:"Output format: plain, trec, json or csv" arg:"-f,--format"`
	Config      string   `help:"TOML file with default settings" arg:"--config"`
	Progress    bool     `help:"Display a progress bar on stderr" arg:"-p,--progress"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf(`%s: the INST evaluation measure from 'INST: An Adaptive Metric for Information Retrieval Evaluation', ADCS 2015.`, name)
}

type config struct {
	Evaluation struct {
		Depth    int    `toml:"eval_depth"`
		Complete bool   `toml:"complete_qrel_queries"`
		PerQuery bool   `toml:"per_query"`
		Graded   bool   `toml:"graded"`
		Format   string `toml:"format"`
	} `toml:"evaluation"`
}

func loadConfig(path string) (config, error) {
	var c config
	if len(path) == 0 {
		return c, nil
	}
	if _, err := toml.DecodeFile(path, &c); err != nil {
		return c, errors.Wrapf(err, "reading config %s", path)
	}
	return c, nil
}

// settings are the command line arguments merged over the config file.
type settings struct {
	options   inst.Options
	perQuery  bool
	formatter output.EvaluationFormatter
}

func resolve(a args, c config) (settings, error) {
	s := settings{
		options: inst.Options{
			Depth:    c.Evaluation.Depth,
			Graded:   a.Graded || c.Evaluation.Graded,
			Progress: a.Progress,
		},
		perQuery: a.PerQuery || c.Evaluation.PerQuery,
	}
	if a.Complete || c.Evaluation.Complete {
		s.options.Policy = eval.Complete
	}
	if a.Depth != nil {
		if *a.Depth <= 0 {
			return s, eval.ConfigurationError{Reason: fmt.Sprintf("eval_depth must be positive, got %d", *a.Depth)}
		}
		s.options.Depth = *a.Depth
	}
	if s.options.Depth < 0 {
		return s, eval.ConfigurationError{Reason: fmt.Sprintf("eval_depth must be positive, got %d", s.options.Depth)}
	}

	format := a.Format
	if len(format) == 0 {
		format = c.Evaluation.Format
	}
	if len(format) == 0 {
		format = "plain"
	}
	f, err := output.Formatter(format)
	if err != nil {
		return s, eval.ConfigurationError{Reason: err.Error()}
	}
	s.formatter = f
	return s, nil
}

// normaliseArgs rewrites the multi-letter short flag -tpq to its long form.
func normaliseArgs(argv []string) []string {
	out := make([]string, len(argv))
	for i, a := range argv {
		switch {
		case a == "--":
			copy(out[i:], argv[i:])
			return out
		case a == "-tpq":
			out[i] = "--T_per_query"
		case strings.HasPrefix(a, "-tpq="):
			out[i] = "--T_per_query=" + strings.TrimPrefix(a, "-tpq=")
		default:
			out[i] = a
		}
	}
	return out
}

func main() {
	var a args
	p, err := arg.NewParser(arg.Config{Program: name}, &a)
	if err != nil {
		log.Fatalln(err)
	}
	err = p.Parse(normaliseArgs(os.Args[1:]))
	switch {
	case err == arg.ErrHelp:
		p.WriteHelp(os.Stdout)
		os.Exit(0)
	case err == arg.ErrVersion:
		fmt.Println(a.Version())
		os.Exit(0)
	case err != nil:
		p.Fail(err.Error())
	}

	if err := eval.ValidateTargetSources(len(a.TPerQuery) > 0, a.OverwriteT != nil); err != nil {
		log.Fatalln(err)
	}
	c, err := loadConfig(a.Config)
	if err != nil {
		log.Fatalln(err)
	}
	s, err := resolve(a, c)
	if err != nil {
		log.Fatalln(err)
	}

	qrels, err := trec.LoadQrels(a.QrelsFile)
	if err != nil {
		log.Fatalln(err)
	}
	run, err := trec.LoadRun(a.ResultsFile)
	if err != nil {
		log.Fatalln(err)
	}
	var perQuery map[string]float64
	if len(a.TPerQuery) > 0 {
		perQuery, err = trec.LoadTargets(a.TPerQuery)
		if err != nil {
			log.Fatalln(err)
		}
	}
	targets, err := eval.NewTargetResolver(perQuery, a.OverwriteT)
	if err != nil {
		log.Fatalln(err)
	}

	evaluation, err := inst.Evaluate(qrels, run, targets, s.options)
	if err != nil {
		log.Fatalln(err)
	}
	v, err := s.formatter(evaluation, s.perQuery)
	if err != nil {
		log.Fatalln(err)
	}
	if _, err := os.Stdout.WriteString(v); err != nil {
		log.Fatalln(err)
	}
}

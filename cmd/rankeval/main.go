package main

import (
	"fmt"
	"log"
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/alexflint/go-arg"
	"github.com/cheggaaa/pb/v3"
	"github.com/hscells/trecresults"
	"github.com/trectools/rankeval"
	"github.com/trectools/rankeval/eval"
	"github.com/trectools/rankeval/output"
	"github.com/trectools/rankeval/retrieval"
)

var (
	name    = "rankeval"
	version = "20.Aug.2026"
)

type args struct {
	Cutoffs          []int    `help:"Rank cutoffs to evaluate at" arg:"-k,separate"`
	Measures         []string `help:"Which evaluation measures to use" arg:"-m,separate"`
	ResultHandlers   []string `help:"Which run handlers to apply before evaluation" arg:"-r,separate"`
	TruncationDepth  int      `help:"Depth for the truncate handler" arg:"-d"`
	RelevanceGrade   int64    `help:"Minimum level of relevance to consider" arg:"-l"`
	RunOutput        string   `help:"Name of processed run file" arg:"-o"`
	EvaluationOutput string   `help:"Name of results file" arg:"-q"`
	Summary          bool     `help:"Only output summary information" arg:"-s"`
	Text             bool     `help:"Output plain text instead of JSON" arg:"-t"`
	QrelsFile        string   `help:"Path to qrels file" arg:"required,positional"`
	RunFile          string   `help:"Path to run file" arg:"required,positional"`
}

func (args) Version() string {
	return version
}

func (args) Description() string {
	return fmt.Sprintf("%s\n# %s", name, version)
}

type config struct {
	Cutoffs  []int    `toml:"cutoffs"`
	Measures []string `toml:"measures"`
	Grade    int64    `toml:"grade"`
}

// loadConfig reads defaults from ~/.rankeval when the file exists.
func loadConfig() config {
	var c config
	dir, err := os.UserHomeDir()
	if err != nil {
		return c
	}
	p := path.Join(dir, ".rankeval")
	if _, err := os.Stat(p); err != nil {
		return c
	}
	if _, err := toml.DecodeFile(p, &c); err != nil {
		log.Fatalln(err)
	}
	return c
}

func main() {
	var args args
	arg.MustParse(&args)

	c := loadConfig()
	if len(args.Cutoffs) == 0 {
		args.Cutoffs = c.Cutoffs
	}
	if len(args.Measures) == 0 {
		args.Measures = c.Measures
	}
	if args.RelevanceGrade == 0 {
		args.RelevanceGrade = c.Grade
	}
	if len(args.Measures) == 0 {
		args.Measures = []string{"recall", "precision", "rr", "ap", "ndcg"}
	}

	if err := rankeval.ValidateCutoffs(args.Cutoffs); err != nil {
		log.Fatalln(err)
	}

	eval.RelevanceGrade = args.RelevanceGrade

	resultsHandlers := map[string]retrieval.ResultsHandler{
		"deduplicate": retrieval.NewDeduplicator(),
		"truncate":    retrieval.Truncator{Depth: args.TruncationDepth},
	}

	measures := map[string]rankeval.Measure{
		"recall":    rankeval.RecallMeasure,
		"precision": rankeval.PrecisionMeasure,
		"rr":        rankeval.ReciprocalRankMeasure,
		"ap":        rankeval.AveragePrecisionMeasure,
		"ndcg":      rankeval.NDCGMeasure,
		"dcg":       func(k int) eval.Evaluator { return eval.DCG{K: k} },
		"f1":        func(k int) eval.Evaluator { return eval.FMeasure{Beta: 1, K: k} },
	}
	fixed := map[string]eval.Evaluator{
		"num_rel":     eval.NumRel,
		"num_ret":     eval.NumRet,
		"num_rel_ret": eval.NumRelRet,
	}

	var evaluators []eval.Evaluator
	for _, m := range args.Measures {
		if measure, ok := measures[m]; ok {
			for _, k := range args.Cutoffs {
				evaluators = append(evaluators, measure(k))
			}
		} else if evaluator, ok := fixed[m]; ok {
			evaluators = append(evaluators, evaluator)
		} else {
			log.Fatalf("unknown measure %s", m)
		}
	}

	r, err := os.OpenFile(args.RunFile, os.O_RDONLY, 0664)
	if err != nil {
		log.Fatalln(err)
	}
	run, err := trecresults.ResultsFromReader(r)
	if err != nil {
		log.Fatalln(err)
	}

	q, err := os.OpenFile(args.QrelsFile, os.O_RDONLY, 0664)
	if err != nil {
		log.Fatalln(err)
	}
	qrels, err := trecresults.QrelsFromReader(q)
	if err != nil {
		log.Fatalln(err)
	}

	for topic, list := range run.Results {
		for _, h := range args.ResultHandlers {
			handler, ok := resultsHandlers[h]
			if !ok {
				log.Fatalf("unknown result handler %s", h)
			}
			if err := handler.Handle(&list); err != nil {
				log.Fatalln(err)
			}
			run.Results[topic] = list
		}
	}

	if len(args.RunOutput) > 0 {
		var processed trecresults.ResultList
		for _, list := range run.Results {
			processed = append(processed, list...)
		}
		t := output.TrecResults{Path: args.RunOutput, Results: processed}
		if err := t.Write(); err != nil {
			log.Fatalln(err)
		}
	}

	evaluation := make(map[string]map[string]float64, len(run.Results))
	bar := pb.StartNew(len(run.Results))
	for topic, list := range run.Results {
		l := list
		evaluation[topic] = make(map[string]float64, len(evaluators))
		for _, evaluator := range evaluators {
			evaluation[topic][evaluator.Name()] = evaluator.Score(&l, qrels.Qrels[topic])
		}
		bar.Increment()
	}
	bar.Finish()

	var rendered string
	if args.Summary {
		means := rankeval.Mean(evaluation)
		means["NumQ"] = float64(len(evaluation))
		rendered, err = output.MeansFormatter(means)
	} else if args.Text {
		rendered, err = output.TextEvaluationFormatter(evaluation)
	} else {
		rendered, err = output.JsonEvaluationFormatter(evaluation)
	}
	if err != nil {
		log.Fatalln(err)
	}

	if len(args.EvaluationOutput) > 0 {
		err = os.WriteFile(args.EvaluationOutput, []byte(rendered), 0664)
	} else {
		_, err = os.Stdout.WriteString(rendered)
	}
	if err != nil {
		log.Fatalln(err)
	}
}

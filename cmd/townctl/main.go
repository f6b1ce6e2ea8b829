package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"text/tabwriter"

	"github.com/ogerber/townpicker/internal/model"
	"github.com/ogerber/townpicker/internal/picker"
	"github.com/ogerber/townpicker/internal/repository"
	"github.com/ogerber/townpicker/pkg/coord"
	"github.com/ogerber/townpicker/pkg/tools"
)

func main() {
	file := flag.String("file", "", "towns csv file, empty for the embedded dataset")
	listCrs := flag.Bool("crs", false, "list supported reference systems")
	transform := flag.String("transform", "", "coordinates to transform")
	from := flag.String("from", "", "source reference system, empty to autodetect")
	to := flag.String("to", "", "target reference system, empty for the other one")
	town := flag.String("town", "", "find towns by name")
	pick := flag.Int("pick", 0, "pick n towns, one per cluster")
	flag.Parse()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	switch {
	case *listCrs:
		printCrs()
	case *transform != "":
		if err := doTransform(*transform, *from, *to); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	case *town != "":
		if err := doFind(*file, *town); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	case *pick > 0:
		if err := doPick(*file, *pick); err != nil {
			fmt.Println(err.Error())
			os.Exit(1)
		}
	default:
		flag.Usage()
	}
}

func printCrs() {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)

	for _, c := range coord.List() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", c.Name, c.Format, c.Description)
	}

	_ = w.Flush()
}

func doTransform(s, from, to string) error {
	p, detected, err := coord.StringToPoint(s)
	if err != nil {
		return err
	}

	if from == "" {
		from = detected
	}

	if to == "" {
		if from == "WGS84" {
			to = "CH1903+"
		} else {
			to = "WGS84"
		}
	}

	res, err := coord.Transform([]coord.Point{p}, from, to)
	if err != nil {
		return err
	}

	fmt.Printf("%s %v %s %v\n", from, []float64(p), to, []float64(res[0]))

	return nil
}

func loadTowns(file string) (*repository.TownsFileRepository, error) {
	if file != "" && !tools.FileExists(file) {
		return nil, fmt.Errorf("no such file: %s", file)
	}

	r := repository.NewTownsFileRepo(file, false)

	if err := r.Start(); err != nil {
		return nil, err
	}

	return r, nil
}

func doFind(file, name string) error {
	r, err := loadTowns(file)
	if err != nil {
		return err
	}

	defer r.Stop()

	printTowns(r.Find(name))

	return nil
}

func doPick(file string, n int) error {
	r, err := loadTowns(file)
	if err != nil {
		return err
	}

	defer r.Stop()

	p := picker.New()

	pick, towns, err := p.Pick(r.All(), n)
	if err != nil {
		return err
	}

	fmt.Printf("pick %s, %d of %d towns\n", pick.UID, pick.N, r.Total())
	printTowns(towns)

	return nil
}

func printTowns(towns []*model.Town) {
	w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tPLZ\tCANTON\tE\tN\tLAT\tLON")

	for _, t := range towns {
		fmt.Fprintf(w, "%s\t%d\t%s\t%.1f\t%.1f\t%.5f\t%.5f\n",
			t.Name, t.PLZ, t.Canton, t.E, t.N, t.Lat, t.Lon)
	}

	_ = w.Flush()

	fmt.Printf("%d towns\n", len(towns))
}

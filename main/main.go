package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	stdio "io"
	"log"
	"os"
	"runtime/pprof"
	"strconv"
	"strings"

	"github.com/phil-mansfield/gointerp/io"
	"github.com/phil-mansfield/gointerp/math/interpolate"
)

// FileGroup contains utility files for logging and writing profiles to.
type FileGroup struct {
	log, prof *os.File
}

// Close closes the files inside FileGroup.
func (fg *FileGroup) Close() {
	if fg.log != nil {
		err := fg.log.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	if fg.prof != nil {
		pprof.StopCPUProfile()
		err := fg.prof.Close()
		if err != nil {
			log.Fatal(err.Error())
		}
	}
}

func main() {
	// The main function sanitizes input, decides on the points, query value
	// and method, and hands everything to the interpolate package. Errors
	// from the library come back as values and are only fatal here.

	var (
		interpolateStr, methodStr, valueStr string
		exampleConfig                       bool
	)

	flag.StringVar(
		&interpolateStr, "Interpolate", "",
		"Configuration file for [Interpolate] mode. If not given, the "+
			"default sample points and query value are used.",
	)
	flag.StringVar(
		&methodStr, "Method", "",
		"Interpolation method. Overrides the config file. Accepted "+
			"arguments are 'Linear', 'Polynomial', 'Lagrange', 'Neville' "+
			"and 1-4.",
	)
	flag.StringVar(
		&valueStr, "Value", "",
		"Point to interpolate at. Overrides the config file.",
	)
	flag.BoolVar(
		&exampleConfig, "ExampleConfig", false,
		"Prints an example [Interpolate] configuration file to stdout.",
	)

	flag.Parse()

	if exampleConfig {
		fmt.Println(io.ExampleInterpolateFile)
		return
	}

	wrap, err := loadConfig(interpolateStr)
	if err != nil {
		log.Fatal(err.Error())
	}
	con := &wrap.Interpolate

	// Command line flags take precedence over the config file.
	if methodStr != "" {
		con.Method = methodStr
	}
	if valueStr != "" {
		con.Value, err = strconv.ParseFloat(valueStr, 64)
		if err != nil {
			log.Fatalf("Could not parse -Value '%s'.", valueStr)
		}
	}

	if !con.ValidValue() {
		if interpolateStr != "" || valueStr != "" {
			log.Fatal("Invalid/non-existent 'Value' value.")
		}
		con.Value = io.DefaultValue
	}
	if err := con.CheckInit(); err != nil {
		log.Fatal(err.Error())
	}

	fg := setupIO(con)
	defer fg.Close()

	pts, err := wrap.PointSet()
	if err != nil {
		log.Fatal(err.Error())
	}

	method, ok := interpolate.MethodFromString(con.Method)
	if !ok {
		method, err = promptMethod(os.Stdin, os.Stdout)
		if err != nil {
			log.Fatal(err.Error())
		}
	}
	fmt.Printf("Selected method: %s\n", method)

	result, err := interpolateMain(con, method, pts)
	if err != nil {
		log.Fatal(err.Error())
	}
	fmt.Printf("the result is: %v\n", result)
}

// loadConfig reads the config file, or returns the default config if no file
// was given.
func loadConfig(fname string) (*io.InterpolateWrapper, error) {
	if fname == "" {
		return io.DefaultInterpolateWrapper(), nil
	}
	return io.ReadInterpolateConfig(fname)
}

// setupIO redirects logging and starts profiling if the config asks for it.
func setupIO(con *io.InterpolateConfig) *FileGroup {
	var err error
	fg := new(FileGroup)

	// Set up log file.
	if con.ValidLogFile() {
		fg.log, err = os.Create(con.LogFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		log.SetOutput(fg.log)
	}

	// Set up profile file.
	if con.ValidProfileFile() {
		fg.prof, err = os.Create(con.ProfileFile)
		if err != nil {
			log.Fatal(err.Error())
		}
		err = pprof.StartCPUProfile(fg.prof)
		if err != nil {
			log.Fatal(err.Error())
		}
	}

	return fg
}

// interpolateMain runs the selected method and writes the optional
// diagnostics the config asks for.
func interpolateMain(
	con *io.InterpolateConfig, method interpolate.Method, pts interpolate.PointSet,
) (float64, error) {
	log.Printf(
		"Interpolating %d points at %g with the %s method.",
		len(pts), con.Value, method,
	)

	intr, err := interpolate.New(method, pts, con.Options()...)
	if err != nil {
		return 0, err
	}
	result, err := intr.Eval(con.Value)
	if err != nil {
		return 0, err
	}

	if con.PrintTable {
		if nev, ok := intr.(*interpolate.Neville); ok {
			printTableau(os.Stdout, nev.Tableau(con.Value))
		} else {
			log.Printf("PrintTable is only used by the Neville method.")
		}
	}

	if con.ValidPlotFile() {
		log.Printf("Writing plot to %s", con.PlotFile)
		if err := plotInterpolant(con.PlotFile, method, intr, pts, con.Value, result); err != nil {
			return 0, err
		}
	}

	return result, nil
}

// promptMethod asks the user to choose a method until a valid identifier
// between 1 and 4 is entered.
func promptMethod(r stdio.Reader, w stdio.Writer) (interpolate.Method, error) {
	fmt.Fprintln(w, "Choose method:")
	for m := interpolate.MethodLinear; m < interpolate.EndMethod; m++ {
		fmt.Fprintf(w, "%d) %s\n", int(m), m)
	}
	fmt.Fprint(w, "Choose option: ")

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		n, err := strconv.Atoi(strings.TrimSpace(scanner.Text()))
		m := interpolate.Method(n)
		if err == nil && m >= interpolate.MethodLinear && m < interpolate.EndMethod {
			return m, nil
		}
		fmt.Fprint(w, "Incorrect option! Try again!\nChoose option: ")
	}

	if err := scanner.Err(); err != nil {
		return 0, err
	}
	return 0, errors.New("No method was chosen.")
}

// printTableau writes every P(m, n) entry of a Neville tableau, narrowest
// intervals first.
func printTableau(w stdio.Writer, tab *interpolate.Tableau) {
	fmt.Fprintf(w, "Neville tableau at x = %g:\n", tab.X)
	for width := 1; width < tab.Size(); width++ {
		for m := 0; m+width < tab.Size(); m++ {
			n := m + width
			fmt.Fprintf(w, "  P(%d, %d) = %v\n", m, n, tab.At(m, n))
		}
	}
}

package main

import (
	"flag"
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/golang/glog"

	"github.com/shinypb/parsenes/ines"
	"github.com/shinypb/parsenes/ui"
)

var (
	path          = flag.String("path", "./rom/sample1.nes", "path to NES ROM file")
	legacyTrainer = flag.Bool("legacy-trainer", false, "treat flags 6 bits 0-1 as the trainer flag")
	dumpCHR       = flag.String("dump-chr", "", "write the raw CHR ROM to file")
	view          = flag.Bool("view", false, "show the CHR ROM pattern tables in a window")
	width         = flag.Int("width", 256*4, "window width")
	height        = flag.Int("height", 128*4, "window height")
	cpuprofile    = flag.String("cpuprofile", "", "write cpu profile to file")
)

// readFile reads file as bytes
func readFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	b, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}
	return b, nil
}

// load reads and parses an iNES file.
func load(path string, d ines.Decoder) (*ines.Cartridge, error) {
	glog.Infof("parsing %s", path)
	buf, err := readFile(path)
	if err != nil {
		return nil, fmt.Errorf("Failed to read %s: %w", path, err)
	}
	cart, err := d.Parse(buf)
	if err != nil {
		return nil, fmt.Errorf("Failed to parse %s: %w", path, err)
	}
	return cart, nil
}

// describe prints the header and the section layout of cart.
func describe(w io.Writer, cart *ines.Cartridge) {
	fmt.Fprintln(w, cart.Header)
	fmt.Fprintf(w, "board   %s\n", ines.MapperName(cart.Mapper))
	l := cart.Layout()
	fmt.Fprintf(w, "header  %v\n", ines.Span{Start: 0, End: ines.HeaderSize})
	if cart.HasTrainer {
		fmt.Fprintf(w, "trainer %v\n", l.Trainer)
	}
	fmt.Fprintf(w, "prg     %v\n", l.PRGROM)
	fmt.Fprintf(w, "chr     %v\n", l.CHRROM)
}

func init() {
	// glfw must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()
	defer glog.Flush()
	if *cpuprofile != "" {
		f, err := os.Create(*cpuprofile)
		if err != nil {
			glog.Fatal("Failed to create CPU profile: ", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			glog.Fatal("Failed to start CPU profile: ", err)
		}
		defer pprof.StopCPUProfile()
	}
	cart, err := load(*path, ines.Decoder{LegacyTrainerBit: *legacyTrainer})
	if err != nil {
		glog.Fatalln(err)
	}
	describe(os.Stdout, cart)
	glog.V(1).Infof("decoded %d bytes: %d PRG banks, %d CHR banks", cart.Size(), cart.PRGBanks, cart.CHRBanks)
	if *dumpCHR != "" {
		if err := ioutil.WriteFile(*dumpCHR, cart.CHRROM, 0644); err != nil {
			glog.Fatalln("Failed to write CHR ROM: ", err)
		}
		glog.Infof("wrote %d bytes of CHR ROM to %s", len(cart.CHRROM), *dumpCHR)
	}
	if *view {
		if err := ui.Start(cart, *width, *height); err != nil {
			glog.Fatalln("Failed to start the viewer: ", err)
		}
	}
}

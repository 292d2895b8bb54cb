// This file is part of Emu816.
//
// Emu816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Emu816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Emu816.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/bradleyjkemp/memviz"
	"github.com/emu816/emu816/firmwareloader"
	"github.com/emu816/emu816/hardware"
	"github.com/emu816/emu816/hardware/preferences"
	"github.com/emu816/emu816/hostterm"
	"github.com/emu816/emu816/logger"
	"github.com/emu816/emu816/modalflag"
	"github.com/emu816/emu816/performance"
	"github.com/emu816/emu816/prefs"
	"github.com/emu816/emu816/resources"
	"github.com/emu816/emu816/statsview"
	"github.com/emu816/emu816/version"
	"golang.org/x/sync/errgroup"
)

func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.NewMode()
	md.AddSubModes("RUN", "TRACE", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, false)

	case "TRACE":
		err = run(md, true)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		fmt.Println(version.String())
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

// newMachine creates the preferences and loads the firmware into a new
// machine. the prefsArg is pushed onto the command line stack before the
// preferences are loaded from disk
func newMachine(prefsArg string, filename string, hash string, host io.Writer) (*hardware.Machine, error) {
	prefs.PushCommandLineStack(prefsArg)
	defer func() {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "emu816", "unused preferences: %s", unused)
		}
	}()

	pth, err := resources.JoinPath(prefs.DefaultPrefsFile)
	if err != nil {
		return nil, err
	}

	p, err := preferences.NewPreferences(pth)
	if err != nil {
		return nil, err
	}

	fl := firmwareloader.NewLoader(filename, hash)
	err = fl.Load()
	if err != nil {
		return nil, err
	}
	logger.Log(logger.Allow, "emu816", version.String())
	logger.Logf(logger.Allow, "emu816", "firmware %s (%s)", fl.ShortName(), fl.Hash)

	return hardware.NewMachine(p, fl.Data, host)
}

func run(md *modalflag.Modes, trace bool) error {
	md.NewMode()

	prefsArg := md.AddString("prefs", "", "preferences: \"key::value; key::value\"")
	hash := md.AddString("hash", "", "expected SHA1 hash of the firmware")
	log := md.AddBool("log", false, "echo debugging log to stderr")
	memvizFile := md.AddString("memviz", "", "write graph of CPU state to file on exit")

	var stats *bool
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo. stdout belongs to the UART
	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("firmware file required for %s mode", md)
	}

	m, err := newMachine(*prefsArg, md.GetArg(0), *hash, os.Stdout)
	if err != nil {
		return err
	}

	if trace {
		m.SetTrace(os.Stderr)
	}

	if stats != nil && *stats {
		statsview.Launch(os.Stderr)
	}

	var trm hostterm.Terminal
	err = trm.Initialise(os.Stdin)
	if err != nil {
		return err
	}
	defer trm.CleanUp()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	ctx, cancel := context.WithCancel(ctx)

	g.Go(func() error {
		defer cancel()
		return m.RunPaced(ctx, nil)
	})

	// the terminal read cannot be interrupted so the pump is left running
	// when the emulation ends
	g.Go(func() error {
		pump := make(chan error, 1)
		go func() {
			pump <- hostterm.Pump(ctx, &trm, m.UART.TryReceive)
		}()

		select {
		case <-ctx.Done():
			return nil
		case err := <-pump:
			return err
		}
	})

	err = g.Wait()

	if *memvizFile != "" {
		if err := writeMemviz(*memvizFile, m); err != nil {
			logger.Log(logger.Allow, "emu816", err)
		}
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "\r\n%s\n", m)
		return err
	}

	return nil
}

// writeMemviz writes a graphviz representation of the CPU state to the named
// file. the snapshot has no reference to the bus so memory is not included
func writeMemviz(filename string, m *hardware.Machine) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	s := m.CPU.Snapshot()
	memviz.Map(f, &s)

	return nil
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	prefsArg := md.AddString("prefs", "", "preferences: \"key::value; key::value\"")
	duration := md.AddString("duration", "5s", "run duration")
	uncapped := md.AddBool("uncapped", true, "run as quickly as possible")
	profile := md.AddString("profile", "none", "run performance check with profiling: command separated CPU, MEM, TRACE or ALL")
	log := md.AddBool("log", false, "echo debugging log to stderr")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *log {
		logger.SetEcho(os.Stderr)
	} else {
		logger.SetEcho(nil)
	}

	if len(md.RemainingArgs()) != 1 {
		return fmt.Errorf("firmware file required for %s mode", md)
	}

	prf, err := performance.ParseProfileString(*profile)
	if err != nil {
		return err
	}

	// UART output is not interesting when checking performance
	m, err := newMachine(*prefsArg, md.GetArg(0), "", io.Discard)
	if err != nil {
		return err
	}

	return performance.Check(md.Output, prf, m, *uncapped, *duration)
}

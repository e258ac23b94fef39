// Command sixfiveohtwo is a batch host for the cpu package: load a
// program, run it for a fixed number of steps (or until it jams), and
// print the register state after each step, optionally preceded by a
// disassembly of the loaded program.
// Grounded on master-g/childhood's mgnes/cmd/pure6502/main.go host loop,
// with its termui interactive rendering (out of scope, see DESIGN.md)
// replaced by flag-driven batch output.
package main

import (
	"encoding/hex"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"
	cli "gopkg.in/urfave/cli.v2"

	"github.com/sixfiveohtwo/sixfiveohtwo/bus"
	"github.com/sixfiveohtwo/sixfiveohtwo/cpu"
	"github.com/sixfiveohtwo/sixfiveohtwo/disassemble"
)

func main() {
	app := &cli.App{
		Name:  "sixfiveohtwo",
		Usage: "run a 6502 program against a flat-memory bus",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "load",
				Usage: "addr:hexbytes program to load, e.g. 8000:A9012A",
				Value: "8000:A9012A",
			},
			&cli.IntFlag{
				Name:  "steps",
				Usage: "number of instructions to execute",
				Value: 10,
			},
			&cli.StringFlag{
				Name:  "variant",
				Usage: "nmos, ricoh, or cmos",
				Value: "nmos",
			},
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "dump full CPU state after each step",
			},
			&cli.BoolFlag{
				Name:  "disasm",
				Usage: "print a disassembly of the loaded program before running",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx *cli.Context) error {
	addr, prog, err := parseLoad(ctx.String("load"))
	if err != nil {
		return err
	}
	variant, err := parseVariant(ctx.String("variant"))
	if err != nil {
		return err
	}

	b := bus.NewRAM(0)
	c := cpu.New(b, variant)
	c.LoadProgram(addr, prog)

	if ctx.Bool("disasm") {
		for _, text := range disassemble.Disassemble(b, addr, addr+uint16(len(prog)), variant) {
			fmt.Println(text)
		}
	}

	for i := 0; i < ctx.Int("steps") && !c.Jammed(); i++ {
		cycles := c.Step()
		fmt.Printf("step %3d: %s  cycles=%d total=%d\n", i, c, cycles, c.TotalCycles())
		if ctx.Bool("dump") {
			spew.Dump(c)
		}
	}
	if c.Jammed() {
		fmt.Println("CPU jammed")
	}
	return nil
}

// parseLoad splits an "addr:hexbytes" flag value into a load address and
// byte slice, e.g. "8000:A9012A" -> (0x8000, []byte{0xA9, 0x01, 0x2A}).
func parseLoad(spec string) (uint16, []uint8, error) {
	parts := strings.SplitN(spec, ":", 2)
	if len(parts) != 2 {
		return 0, nil, fmt.Errorf("malformed --load %q, want addr:hexbytes", spec)
	}
	addr64, err := strconv.ParseUint(parts[0], 16, 16)
	if err != nil {
		return 0, nil, fmt.Errorf("malformed --load address %q: %w", parts[0], err)
	}
	prog, err := hex.DecodeString(parts[1])
	if err != nil {
		return 0, nil, fmt.Errorf("malformed --load bytes %q: %w", parts[1], err)
	}
	return uint16(addr64), prog, nil
}

func parseVariant(s string) (cpu.CPUType, error) {
	switch strings.ToLower(s) {
	case "nmos":
		return cpu.CPU_NMOS, nil
	case "ricoh":
		return cpu.CPU_NMOS_RICOH, nil
	case "cmos":
		return cpu.CPU_CMOS, nil
	}
	return 0, fmt.Errorf("unknown --variant %q, want nmos, ricoh, or cmos", s)
}

package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"vx86/asm"
	"vx86/cpu"
	"vx86/emulator"
)

func main() {
	var compile string
	var input string
	var output string
	var dump bool
	var verbose bool

	flag.StringVar(&compile, "c", "", ".asm file to assemble and run")
	flag.StringVar(&input, "i", "-", "Console input")
	flag.StringVar(&output, "o", "-", "Console output")
	flag.BoolVar(&dump, "s", false, "Print machine state after the run")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	prog := &cpu.Program{}

	// Assemble a new program listing.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		as := &asm.Assembler{Verbose: verbose}
		prog, err = as.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	emu := emulator.NewEmulator()
	emu.Program = prog
	emu.Verbose = verbose

	if input == "-" {
		emu.Console.Input = os.Stdin
	} else {
		inf, err := os.Open(input)
		if err != nil {
			log.Fatalf("%v: %v", input, err)
		}
		defer inf.Close()
		emu.Console.Input = inf
	}

	if output == "-" {
		emu.Console.Output = os.Stdout
	} else {
		ouf, err := os.Create(output)
		if err != nil {
			log.Fatalf("%v: %v", output, err)
		}
		defer ouf.Close()
		emu.Console.Output = ouf
	}

	err := emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	err = emu.Run()
	if err != nil {
		log.Fatal(err)
	}

	if dump {
		fmt.Print(emu)
	}

	os.Exit(int(emu.Cpu.Status))
}

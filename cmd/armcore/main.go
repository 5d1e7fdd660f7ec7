// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/ezrec/armcore/asm"
	"github.com/ezrec/armcore/cpu"
	"github.com/ezrec/armcore/emulator"
	"github.com/ezrec/armcore/translate"
)

func main() {
	var compile string
	var binary string
	var base string
	var entry string
	var model_name string
	var limit int
	var verbose bool
	var lang string

	flag.StringVar(&compile, "c", "", ".s file to assemble")
	flag.StringVar(&binary, "b", "", "Raw binary to map read-only")
	flag.StringVar(&base, "base", "0x08000000", "Load address of the raw binary")
	flag.StringVar(&entry, "pc", "", "Entry point override")
	flag.StringVar(&model_name, "model", cpu.MODEL_ARM7TDMI.String(), "Core model: arm7tdmi or arm946es")
	flag.IntVar(&limit, "n", 0, "Tick limit, 0 for none")
	flag.BoolVar(&verbose, "v", false, "Verbose mode")
	flag.StringVar(&lang, "lang", "", "Message language")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	if len(lang) != 0 {
		translate.SetLanguage(lang)
	}

	model, err := cpu.ParseModel(model_name)
	if err != nil {
		log.Fatalf("%v: %v", model_name, err)
	}

	emu := emulator.NewEmulator(model)
	emu.Verbose = verbose

	// Assemble a new image.
	if len(compile) != 0 {
		inf, err := os.Open(compile)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
		defer inf.Close()

		assembler := &asm.Assembler{Verbose: verbose}
		for k, v := range emu.Defines() {
			assembler.Predefine(k, v)
		}
		emu.Image, err = assembler.Parse(inf)
		if err != nil {
			log.Fatalf("%v: %v", compile, err)
		}
	}

	if len(binary) != 0 {
		address, err := strconv.ParseUint(base, 0, 32)
		if err != nil {
			log.Fatalf("-base %v: %v", base, err)
		}
		err = emu.LoadRom(os.DirFS(filepath.Dir(binary)), filepath.Base(binary), uint32(address))
		if err != nil {
			log.Fatalf("%v: %v", binary, err)
		}
		if len(compile) == 0 {
			emu.Image.Entry = uint32(address)
		}
	}

	if len(entry) != 0 {
		address, err := strconv.ParseUint(entry, 0, 32)
		if err != nil {
			log.Fatalf("-pc %v: %v", entry, err)
		}
		emu.Image.Entry = uint32(address)
	}

	err = emu.Reset()
	if err != nil {
		log.Fatal(err)
	}

	for done := false; !done; {
		if limit > 0 && emu.Ticks >= limit {
			break
		}
		done, err = emu.Tick()
		if err != nil {
			if !emu.Trapped(err) {
				log.Fatal(err)
			}
			if emu.Verbose {
				log.Printf("armcore: %v", err)
			}
		}
	}

	fmt.Print(emu.Cpu.String())
}

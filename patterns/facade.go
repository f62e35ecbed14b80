package patterns

import (
	"fmt"
	"io"
)

// CPU is one of the subsystems hidden behind the facade.
type CPU struct {
	out  io.Writer
	name string
}

func (c CPU) Start()   { fmt.Fprintf(c.out, "CPU %s started\n", c.name) }
func (c CPU) Execute() { fmt.Fprintln(c.out, "CPU executing instructions") }
func (c CPU) Stop()    { fmt.Fprintln(c.out, "CPU stopped") }

// Memory is one of the subsystems hidden behind the facade.
type Memory struct {
	out    io.Writer
	sizeMB int
}

func (m Memory) Load()   { fmt.Fprintf(m.out, "Loading %dMB memory\n", m.sizeMB) }
func (m Memory) Unload() { fmt.Fprintln(m.out, "Unloading memory") }

// HardDrive is one of the subsystems hidden behind the facade.
type HardDrive struct {
	out        io.Writer
	capacityGB int
}

func (h HardDrive) Read()  { fmt.Fprintf(h.out, "Reading from %dGB hard drive\n", h.capacityGB) }
func (h HardDrive) Write() { fmt.Fprintf(h.out, "Writing to %dGB hard drive\n", h.capacityGB) }

// ComputerFacade presents a two-call API over the three subsystems.
type ComputerFacade struct {
	out    io.Writer
	cpu    CPU
	memory Memory
	disk   HardDrive
}

// NewComputerFacade wires up a stock machine.
func NewComputerFacade(w io.Writer) *ComputerFacade {
	return &ComputerFacade{
		out:    w,
		cpu:    CPU{out: w, name: "Intel i7"},
		memory: Memory{out: w, sizeMB: 8192},
		disk:   HardDrive{out: w, capacityGB: 500},
	}
}

// Start boots the machine: CPU up, memory in, disk read, then execute.
func (f *ComputerFacade) Start() {
	fmt.Fprintln(f.out, "Starting computer...")
	f.cpu.Start()
	f.memory.Load()
	f.disk.Read()
	f.cpu.Execute()
	fmt.Fprintln(f.out, "Computer ready!")
}

// Shutdown stops the machine in the reverse discipline.
func (f *ComputerFacade) Shutdown() {
	fmt.Fprintln(f.out, "Shutting down computer...")
	f.cpu.Stop()
	f.memory.Unload()
	f.disk.Write()
	fmt.Fprintln(f.out, "Computer shut down.")
}

// DemoFacade walks through simplifying a subsystem behind one API.
func DemoFacade(w io.Writer) {
	banner(w, "🏛️  FACADE PATTERN DEMO")
	fmt.Fprintln(w, "\nThis pattern provides a simplified interface to complex subsystems.")
	fmt.Fprintln(w, "Go benefit: a small struct composing the subsystems it hides.")

	section(w, "Example 1: Simplified computer operations")
	computer := NewComputerFacade(w)
	computer.Start()
	fmt.Fprintln(w)
	computer.Shutdown()

	section(w, "Example 2: Direct access (without facade)")
	fmt.Fprintln(w, "Using components directly:")
	cpu := CPU{out: w, name: "AMD Ryzen"}
	memory := Memory{out: w, sizeMB: 16384}
	disk := HardDrive{out: w, capacityGB: 1000}

	fmt.Fprintln(w, "Low-level operations:")
	cpu.Start()
	memory.Load()
	disk.Read()

	points(w,
		"Simplify complex subsystem interfaces",
		"One unified entry point for common flows",
		"Hide boot/shutdown ordering from callers",
		"Reduce coupling between client and subsystem",
	)
}

package InputParameters

import (
	"fmt"

	"github.com/ghodss/yaml"
)

// Parameters obtained from the YAML input file
type SimParameters struct {
	Title                string  `yaml:"Title"`
	Model                string  `yaml:"Model"` // "diffusion" or "liquid"
	Nx                   int     `yaml:"Nx"`
	Ny                   int     `yaml:"Ny"`
	GridSpacing          float64 `yaml:"GridSpacing"`
	DiffusionCoefficient float64 `yaml:"DiffusionCoefficient"`
	TimeStep             float64 `yaml:"TimeStep"`
	FinalTime            float64 `yaml:"FinalTime"`
	Gravity              float64 `yaml:"Gravity"`
	FluidLevel           float64 `yaml:"FluidLevel"` // Fraction of domain height initially filled
	BoundaryFriction     string  `yaml:"BoundaryFriction"`
	MaxIterations        int     `yaml:"MaxIterations"`
	Tolerance            float64 `yaml:"Tolerance"`
	ParticleSpacing      float64 `yaml:"ParticleSpacing"`
	ParticleJitter       float64 `yaml:"ParticleJitter"`
	MaxParticles         int     `yaml:"MaxParticles"`
	Seed                 int64   `yaml:"Seed"`
}

func (sp *SimParameters) Parse(data []byte) error {
	return yaml.Unmarshal(data, sp)
}

func (sp *SimParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", sp.Title)
	fmt.Printf("[%s]\t\t\t= Model\n", sp.Model)
	fmt.Printf("[%d x %d]\t\t= Resolution\n", sp.Nx, sp.Ny)
	fmt.Printf("%8.5f\t\t= GridSpacing\n", sp.GridSpacing)
	fmt.Printf("%8.5f\t\t= DiffusionCoefficient\n", sp.DiffusionCoefficient)
	fmt.Printf("%8.5f\t\t= TimeStep\n", sp.TimeStep)
	fmt.Printf("%8.5f\t\t= FinalTime\n", sp.FinalTime)
	fmt.Printf("%8.5f\t\t= Gravity\n", sp.Gravity)
	fmt.Printf("%8.5f\t\t= FluidLevel\n", sp.FluidLevel)
	fmt.Printf("[%s]\t\t= BoundaryFriction\n", sp.BoundaryFriction)
	fmt.Printf("[%d]\t\t\t= MaxIterations\n", sp.MaxIterations)
}

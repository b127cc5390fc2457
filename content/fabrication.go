package content

import "fmt"

// ImageBase 工艺图片的远程地址前缀
const ImageBase = "https://raw.githubusercontent.com/LiCHANHUI/mosfet-images/main/MOSFET%20%EC%82%AC%EC%A7%84%20"

var fabricationSteps = []string{
	"Native oxide removal: oxygen in the air bonds with Si and grows a native SiO2 layer.",
	"Initial cleaning: the native oxide is removed by a cleaning process.",
	"Wet oxidation: an SiO2 layer is grown to the required thickness.",
	"PR coating: photoresist is applied to pattern the wafer.",
	"Exposure: a photomask is placed over the wafer and UV light selectively changes the PR.",
	"Development: exposed PR is dissolved, leaving the photomask pattern in the PR.\n\nHard bake: residual solvent is driven off to improve adhesion and etch resistance.",
	"Etching: areas still covered by PR are protected while bare areas are etched.\n\nThe photomask pattern is transferred into the oxide.",
	"PR strip: with patterning done the PR is stripped using the cleaning process.",
	"Impurity doping: a dopant source is applied, impurities enter where there is no oxide, and annealing diffuses them into the wafer.\n\nThis forms the n-type source and drain.",
	"The gate oxide is formed by repeating PR coat, soft bake, exposure, development, hard bake, etch, PR strip, clean, dry oxidation and clean.\n\nPR is applied again to form the source, gate and drain terminals.",
	"Terminals are patterned, Al or Al-Si is deposited and cleaned, then PR is applied to separate the terminals.",
	"Soft bake, exposure, development, hard bake, aluminium etch, PR strip and clean separate the terminals.\n\nAnnealing improves adhesion between the N well and the metal electrodes and lowers contact resistance.",
	"After annealing the exposed aluminium oxidises and its resistance rises.\n\nA protective Si3N4 layer is coated to keep the aluminium contact resistance low.",
}

// FabricationSlides MOSFET 制造工艺说明
func FabricationSlides() []Slide {
	slides := make([]Slide, len(fabricationSteps))
	for i, d := range fabricationSteps {
		slides[i] = Slide{
			Caption:     fmt.Sprintf("MOSFET structure %d", i+1),
			Description: d,
			ImageURL:    fmt.Sprintf("%s%d.png", ImageBase, i+1),
		}
	}
	return slides
}

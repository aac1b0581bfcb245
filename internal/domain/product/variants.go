package product

import (
	"fmt"
	"strconv"
)

type CommercialPrint struct {
	Type           string `json:"productType"`
	Option         string `json:"option"`
	ItemSize       string `json:"itemSize"`
	ShippedSize    string `json:"shippedSize"`
	Material       string `json:"material"`
	SidesPrinted   string `json:"sidesPrinted"`
	PMSColors      string `json:"pmsColors"`
	Coating        string `json:"coating"`
	Thickness      string `json:"thickness"`
	SidesCoated    string `json:"sidesCoated"`
	Coverage       string `json:"coverage"`
	Lamination     string `json:"lamination"`
	SidesLaminated string `json:"sidesLaminated"`
	Ganging        string `json:"ganging"`
	PaperCost      string `json:"paperCost"`
	FoldingType    string `json:"foldingType,omitempty"`
}

func DefaultCommercialPrint() *CommercialPrint {
	return &CommercialPrint{
		Type:           "Flyers",
		Option:         "None",
		ItemSize:       "8.5 x 3.5",
		ShippedSize:    "8.5 x 3.5",
		Material:       "16pt Gloss Cover",
		SidesPrinted:   "4/4",
		PMSColors:      "0",
		Coating:        "No_Coating",
		Thickness:      "1mil",
		SidesCoated:    "0",
		Coverage:       "100%",
		Lamination:     "Matte_Lamination",
		SidesLaminated: "2",
		Ganging:        "Yes",
		PaperCost:      "Current Price",
	}
}

func (c *CommercialPrint) Kind() Kind          { return KindCommercialPrint }
func (c *CommercialPrint) ProductType() string { return c.Type }

func (c *CommercialPrint) Specifications() []Spec {
	var s specs
	s.add("Size", c.ItemSize)
	s.add("Material", c.Material)
	s.addf("Printing", "%s Sides", c.SidesPrinted)
	s.add("Coating", c.Coating)
	s.add("Sides Coated", c.SidesCoated)
	s.add("Lamination", c.Lamination)
	s.add("Sides Laminated", c.SidesLaminated)
	s.add("Option", c.Option)
	s.add("Folding", c.FoldingType)
	return s
}

type FlatSize struct {
	Length float64 `json:"length"`
	Height float64 `json:"height"`
}

type FoldingCarton struct {
	Type           string   `json:"productType"`
	FlatSize       FlatSize `json:"flatSize"`
	Material       string   `json:"material"`
	SidesPrinted   string   `json:"sidesPrinted"`
	PMSColors      string   `json:"pmsColors"`
	Coating        string   `json:"coating"`
	SidesCoated    string   `json:"sidesCoated"`
	Lamination     string   `json:"lamination"`
	SidesLaminated string   `json:"sidesLaminated"`
	Ganging        string   `json:"ganging"`
	PrintMethod    string   `json:"printMethod"`
	Passes         string   `json:"passes"`
	DieRequired    string   `json:"dieRequired"`
	GlueRequired   string   `json:"glueRequired"`
	GlueFlaps      int      `json:"glueFlaps"`
}

func DefaultFoldingCarton() *FoldingCarton {
	return &FoldingCarton{
		Type:           "Standard Tuck End Box",
		FlatSize:       FlatSize{Length: 14.6, Height: 13.125},
		Material:       "20pt Gloss C1S Cover (Indirect Food Grade)",
		SidesPrinted:   "4/0",
		PMSColors:      "0",
		Coating:        "Gloss_AQ",
		SidesCoated:    "1",
		Lamination:     "No_Coating",
		SidesLaminated: "0",
		Ganging:        "No",
		PrintMethod:    "Offset",
		Passes:         "1",
		DieRequired:    "No",
		GlueRequired:   "Yes",
		GlueFlaps:      3,
	}
}

func (c *FoldingCarton) Kind() Kind          { return KindFoldingCarton }
func (c *FoldingCarton) ProductType() string { return c.Type }

func (c *FoldingCarton) Specifications() []Spec {
	var s specs
	if c.FlatSize.Length > 0 && c.FlatSize.Height > 0 {
		s.add("Flat Size", fmt.Sprintf("%s x %s", trimFloat(c.FlatSize.Length), trimFloat(c.FlatSize.Height)))
	}
	s.add("Material", c.Material)
	s.addf("Printing", "%s Sides", c.SidesPrinted)
	s.add("PMS Colors", c.PMSColors)
	s.add("Coating", c.Coating)
	s.add("Sides Coated", c.SidesCoated)
	s.add("Lamination", c.Lamination)
	s.add("Sides Laminated", c.SidesLaminated)
	s.add("Print Method", c.PrintMethod)
	s.add("Passes", c.Passes)
	if c.DieRequired == "Yes" {
		s.add("Die", "Required")
	}
	if c.GlueRequired == "Yes" && c.GlueFlaps > 0 {
		s.add("Glue Flaps", strconv.Itoa(c.GlueFlaps))
	}
	return s
}

const (
	RollStock      = "Roll_Stock"
	FlatLayPouches = "Flat_Lay_Pouches"
	StandUpPouches = "Stand_Up_Pouches"
)

type FlexiblePackaging struct {
	Product        string `json:"product"`
	RollWidth      string `json:"rollWidth,omitempty"`
	RepeatLength   string `json:"repeatLength,omitempty"`
	WindDirection  string `json:"windDirection,omitempty"`
	RepeatsPerRoll string `json:"repeatsPerRoll,omitempty"`
	Height         string `json:"height,omitempty"`
	Width          string `json:"width,omitempty"`
	Gusset         string `json:"gusset,omitempty"`
	Lamination     string `json:"lamination"`
	MainStructure  string `json:"mainStructure"`
	Barrier        string `json:"barrier"`
	Ink            string `json:"ink"`
	Zipper         string `json:"zipper,omitempty"`
	TearNotch      string `json:"tearNotch,omitempty"`
	HolePunch      string `json:"holePunch,omitempty"`
}

func DefaultFlexiblePackaging() *FlexiblePackaging {
	return &FlexiblePackaging{
		Product:        RollStock,
		RollWidth:      "36",
		RepeatLength:   "12",
		WindDirection:  "Standard_Wind_Out",
		RepeatsPerRoll: "1000",
		Lamination:     "Gloss",
		MainStructure:  "White_PE",
		Barrier:        "None",
		Ink:            "CMYK",
	}
}

// normalize drops the dimensional fields that do not belong to the selected
// product, the way the form resets them on product change.
func (c *FlexiblePackaging) normalize() error {
	switch c.Product {
	case RollStock:
		c.Height, c.Width, c.Gusset = "", "", ""
		c.Zipper, c.TearNotch, c.HolePunch = "", "", ""
		c.RollWidth = orDefault(c.RollWidth, "36")
		c.RepeatLength = orDefault(c.RepeatLength, "12")
		c.WindDirection = orDefault(c.WindDirection, "Standard_Wind_Out")
		c.RepeatsPerRoll = orDefault(c.RepeatsPerRoll, "1000")
	case FlatLayPouches:
		c.RollWidth, c.RepeatLength, c.WindDirection, c.RepeatsPerRoll = "", "", "", ""
		c.Gusset = ""
	case StandUpPouches:
		c.RollWidth, c.RepeatLength, c.WindDirection, c.RepeatsPerRoll = "", "", "", ""
	default:
		return fmt.Errorf("unknown flexible packaging product %q", c.Product)
	}
	return nil
}

func (c *FlexiblePackaging) Kind() Kind          { return KindFlexiblePackaging }
func (c *FlexiblePackaging) ProductType() string { return c.Product }

func (c *FlexiblePackaging) Specifications() []Spec {
	var s specs
	switch c.Product {
	case RollStock:
		s.add("Roll Width", c.RollWidth)
		s.add("Repeat Length", c.RepeatLength)
		s.add("Wind Direction", c.WindDirection)
		s.add("Repeats Per Roll", c.RepeatsPerRoll)
	case FlatLayPouches:
		s.add("Height", c.Height)
		s.add("Width", c.Width)
	case StandUpPouches:
		s.add("Height", c.Height)
		s.add("Width", c.Width)
		s.add("Gusset", c.Gusset)
	}
	s.add("Lamination", c.Lamination)
	s.add("Main Structure", c.MainStructure)
	s.add("Barrier", c.Barrier)
	s.add("Ink", c.Ink)
	if c.Product != RollStock {
		s.add("Zipper", c.Zipper)
		s.add("Tear Notch", c.TearNotch)
		s.add("Hole Punch", c.HolePunch)
	}
	return s
}

type RollLabel struct {
	Type          string `json:"productType"`
	Material      string `json:"material"`
	Shape         string `json:"shape"`
	Size          string `json:"size"`
	Ink           string `json:"ink"`
	Coating       string `json:"coating"`
	Coverage      string `json:"coverage"`
	Lamination    string `json:"lamination"`
	WindDirection string `json:"windDirection"`
	LabelsPerCore string `json:"labelsPerCore"`
	Perforation   string `json:"perforation"`
	CutMethod     string `json:"cutMethod"`
}

func DefaultRollLabel() *RollLabel {
	return &RollLabel{
		Type:          "BOPP",
		Material:      "White Gloss BOPP Freezer",
		Shape:         "Circle",
		Size:          "3 x 3",
		Ink:           "CMYK",
		Coating:       "No_Coating",
		Lamination:    "Matte_Lamination",
		WindDirection: "WD 2 = Bottom off First",
		LabelsPerCore: "Does Not Matter",
		Perforation:   "No",
		CutMethod:     "Does_Not_Matter",
	}
}

func (c *RollLabel) Kind() Kind          { return KindRollLabel }
func (c *RollLabel) ProductType() string { return c.Type }

func (c *RollLabel) Specifications() []Spec {
	var s specs
	s.add("Size", c.Size)
	s.add("Material", c.Material)
	s.add("Shape", c.Shape)
	s.add("Ink", c.Ink)
	s.add("Coating", c.Coating)
	s.add("Coverage", c.Coverage)
	s.add("Lamination", c.Lamination)
	s.add("Wind Direction", c.WindDirection)
	s.add("Labels Per Core", c.LabelsPerCore)
	if c.Perforation == "Yes" {
		s.add("Perforation", "Yes")
	}
	return s
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}

func trimFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

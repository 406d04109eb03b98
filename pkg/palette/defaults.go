package palette

// Photoreceptor is the default table for zebrafish photoreceptor subtypes and
// bipolar cells:
//
//	r     #747474   rods
//	u     #B540B7   UV cones
//	s     #4669F2   S cones
//	m     #04CD22   M cones
//	l     #CC2C2A   L cones
//	m4    #cdcd04   M4 cones
//	onBC  #ccf2ff   ON bipolar cells
//	offBC #663d00   OFF bipolar cells
func Photoreceptor() Palette {
	return fromHex(map[Category]string{
		Rods:  "#747474",
		UV:    "#B540B7",
		S:     "#4669F2",
		M:     "#04CD22",
		L:     "#CC2C2A",
		M4:    "#cdcd04",
		OnBC:  "#ccf2ff",
		OffBC: "#663d00",
	})
}

// Retina is the default table for whole-retina cell classes.
func Retina() Palette {
	return fromHex(map[Category]string{
		RPC:         "#DADADA",
		PRPC:        "#dfdac8",
		ConesLarval: "#dcc360",
		ConesAdult:  "#ffd429",
		RodsAdult:   "#7d7d7d",
		HC:          "#FC7715",
		BCLarval:    "#ccf2ff",
		BCAdult:     "#663d00",
		ACLarval:    "#3DF591",
		ACGaba:      "#3DF5C3",
		ACGly:       "#56F53D",
		RGCLarval:   "#F53D59",
		RGCAdult:    "#BB0622",
		MGi:         "#EA9D81",
		MG1:         "#A2644E",
		MG2:         "#7E4835",
		MG3:         "#613728",
	})
}

// PRDev is the default table for photoreceptor development stages. The
// adult subtypes use slightly darker rods than Photoreceptor.
func PRDev() Palette {
	return fromHex(map[Category]string{
		PRP:   "#dfdac8",
		EslPR: "#dacd9a",
		MslPR: "#dcc360",
		LslPR: "#cca819",
		AdPR:  "#ffd429",
		LslR:  "#a3a3a3",
		Rods:  "#7d7d7d",
		UV:    "#B540B7",
		S:     "#4669F2",
		M:     "#04CD22",
		L:     "#CC2C2A",
	})
}

// Nerli is the default table for the four retinal lineages.
func Nerli() Palette {
	return fromHex(map[Category]string{
		RPC:  "#DADADA",
		PR:   "#dcc360",
		HCAC: "#3DF591",
		RGC:  "#F53D59",
	})
}

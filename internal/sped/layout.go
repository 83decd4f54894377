package sped

// Record tags handled by the parser.
const (
	TagHeader  = "0000"
	TagChart   = "I050"
	TagBalance = "I155"
)

// Field offsets after splitting a line on "|". Index 0 is the empty token
// before the leading delimiter and index 1 is the tag.
const (
	colTag = 1

	// |0000|LECD|DT_INI|DT_FIN|...|NOME|CNPJ|UF|...
	headerMinFields = 9
	headerColStart  = 3
	headerColEnd    = 4
	headerColName   = 6
	headerColTaxID  = 7
	headerColState  = 8

	// |I050|DT_ALT|COD_NAT|IND_CTA|NIVEL|COD_CTA|COD_CTA_SUP|CTA|
	chartMinFields = 9
	chartColNature = 3
	chartColKind   = 4
	chartColLevel  = 5
	chartColCode   = 6
	chartColParent = 7
	chartColDesc   = 8

	// |I155|COD_CTA|COD_CCUS|VL_SLD_INI|IND_DC_INI|VL_DEB|VL_CRED|VL_SLD_FIN|IND_DC_FIN|
	balanceMinFields     = 10
	balanceColCode       = 2
	balanceColCostCenter = 3
	balanceColOpening    = 4
	balanceColOpeningInd = 5
	balanceColDebit      = 6
	balanceColCredit     = 7
	balanceColClosing    = 8
	balanceColClosingInd = 9
)

package registry

// DepartmentNames is the fixed list of departments the sharing client is
// configured with. Order matters: the first entry is the folder selected
// at startup.
var DepartmentNames = []string{
	"DAMKAR",
	"DINSOS",
	"DUKCAPIL",
	"DISKOMINFO",
	"DISDIKBUD",
	"Kantor Camat Kelapa",
	"SEKDA",
	"Dinas PUPR",
	"DPRKP",
	"DLHK",
	"DISHUB",
	"INSPEKTORAT",
	"BAPPEDA",
	"BALITBANGDA",
	"Kantor Camat Oebobo",
	"DISPUSIP",
	"DINKOPUKM",
	"DPMPTST",
	"DISPERINDAG",
	"DKP",
	"BKAD",
	"BKPPD",
	"Kantor Camat Maulafa",
	"DINKES",
	"DISNAKERTRANS",
	"DP3A",
	"DISTANPAN",
	"DPPKB",
	"DISPORA",
	"DISPAR",
	"Kantor Camat Kota Raja",
	"Sekretariat DPRD",
	"BAPENDA",
	"SATPOL PP",
	"RSUD SK LERIK",
	"DISPERTA",
	"BADAN KESBANGPOL",
	"BPBD",
	"Kantor Camat Alak",
}

// Default builds the registry from DepartmentNames. The list is static and
// known to be collision-free, so construction cannot fail in practice.
func Default() (*Registry, error) {
	return New(DepartmentNames)
}

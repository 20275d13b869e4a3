package document

import "strings"

var destinationAliases = map[string][]string{
	"New York":        {"NEW YORK", "NYC", "NEWYORK", "N.Y.", "NY"},
	"Los Angeles":     {"LOS ANGELES", "LA", "L.A."},
	"Rotterdam":       {"ROTTERDAM"},
	"Hamburg":         {"HAMBURG"},
	"Norfolk":         {"NORFOLK", "ORF"},
	"Savannah":        {"SAVANNAH", "SAV"},
	"Charleston":      {"CHARLESTON"},
	"Miami":           {"MIAMI", "MIA"},
	"Oakland":         {"OAKLAND", "OAK"},
	"Houston":         {"HOUSTON", "HOU"},
	"Dallas":          {"DALLAS", "FWO", "FORT WORTH", "FT WORTH"},
	"Memphis":         {"MEMPHIS", "MEM"},
	"Atlanta":         {"ATLANTA", "ATL"},
	"Chicago":         {"CHICAGO", "CHI"},
	"Columbus":        {"COLUMBUS", "CMH"},
	"Singapore":       {"SINGAPORE", "SGP"},
	"Jakarta":         {"JAKARTA"},
	"Port Klang":      {"PORT KLANG", "PORT KLANG (W)", "PORT KLANG (N)", "PKG", "PKW"},
	"Penang":          {"PENANG"},
	"Surabaya":        {"SURABAYA"},
	"Bangkok":         {"BANGKOK"},
	"Ho Chi Minh":     {"HO CHI MINH", "HCM", "SAIGON"},
	"Haiphong":        {"HAIPHONG", "HPH"},
	"Hanoi":           {"HANOI"},
	"Manila":          {"MANILA", "MNL"},
	"Busan":           {"BUSAN", "PUSAN", "PUS"},
	"Hong Kong":       {"HONG KONG", "HK", "HKG"},
	"Kaohsiung":       {"KAOHSIUNG", "KHH"},
	"Sydney":          {"SYDNEY", "SYD"},
	"Melbourne":       {"MELBOURNE", "MEL"},
	"Adelaide":        {"ADELAIDE", "ADL"},
	"Fremantle":       {"FREMANTLE", "FRE"},
	"Brisbane":        {"BRISBANE", "BNE"},
	"Xiamen":          {"XIAMEN"},
	"Qingdao":         {"QINGDAO", "TSINGTAO"},
	"Dalian":          {"DALIAN"},
	"Shanghai":        {"SHANGHAI"},
	"Ningbo":          {"NINGBO"},
	"Shekou":          {"SHEKOU"},
	"Yantian":         {"YANTIAN", "YTN"},
	"Nansha":          {"NANSHA"},
	"Shenzhen":        {"SHENZHEN"},
	"Tanjung Pelepas": {"TANJUNG PELEPAS", "TPP"},
	"Port Kelang":     {"PORT KELANG", "PORTKLANG"},
}

// AliasesFor returns the upper-cased spellings a schedule may use for
// destination. Lookup ignores case; unknown names map to themselves.
func AliasesFor(destination string) []string {
	name := strings.TrimSpace(destination)
	for key, aliases := range destinationAliases {
		if strings.EqualFold(key, name) {
			out := make([]string, len(aliases))
			copy(out, aliases)
			return out
		}
	}
	if name == "" {
		return nil
	}
	return []string{strings.ToUpper(name)}
}

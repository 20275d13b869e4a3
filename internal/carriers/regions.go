package carriers

import "strings"

// Region is one classification category of a carrier.
type Region struct {
	Code      string
	Label     string
	Keywords  []string
	Templates []string
}

type RegionTable []Region

func (t RegionTable) Codes() []string {
	out := make([]string, len(t))
	for i, r := range t {
		out[i] = r.Code
	}
	return out
}

func (t RegionTable) Lookup(code string) (Region, bool) {
	for _, r := range t {
		if r.Code == code {
			return r, true
		}
	}
	return Region{}, false
}

var ONERegions = RegionTable{
	{Code: "NORTH AMERICA EAST COAST", Label: "北米東岸輸出"},
	{Code: "NORTH AMERICA WEST COAST", Label: "北米西岸輸出"},
	{Code: "HAWAII", Label: "ハワイ輸出"},
	{Code: "EUROPE NORTH", Label: "北欧州輸出"},
	{Code: "EUROPE MEDITERRANEAN", Label: "地中海輸出"},
	{Code: "EAST ASIA", Label: "中国・香港・海峡地・インドネシア輸出"},
	{Code: "SOUTHEAST ASIA", Label: "タイ・ベトナム・韓国・台湾・フィリピン輸出"},
	{Code: "MIDDLE EAST", Label: "中東・南アジア輸出"},
	{Code: "SOUTH AMERICA WEST COAST", Label: "南米西岸輸出"},
	{Code: "SOUTH AMERICA EAST COAST", Label: "南米東岸輸出"},
	{Code: "AFRICA", Label: "アフリカ輸出"},
	{Code: "OCEANIA", Label: "オセアニア輸出"},
}

const coscoAttachmentBase = "https://world.lines.coscoshipping.com/lines_resource/local/japan/defaultContentAttachment/{DATE}/"

func coscoTemplates(files ...string) []string {
	out := make([]string, len(files))
	for i, f := range files {
		out[i] = coscoAttachmentBase + f
	}
	return out
}

// COSCORegions lists all categories the model may answer with. Only some of
// them publish a Japanese export PDF.
var COSCORegions = RegionTable{
	{Code: "AMERICA CANADA", Label: "アメリカ・カナダサービス", Templates: coscoTemplates("EXP_USA.pdf")},
	{Code: "AUSTRALIA", Label: "オーストラリアサービス", Templates: coscoTemplates("EXP_AUS.pdf")},
	{Code: "NEW ZEALAND", Label: "ニュージーランドサービス", Templates: coscoTemplates("EXP_NZ.pdf")},
	{Code: "EUROPE", Label: "ヨーロッパサービス", Templates: coscoTemplates("EXP_EU.pdf")},
	{Code: "MEDITERRANEAN", Label: "地中海サービス", Templates: coscoTemplates("EXP_MED.pdf")},
	{Code: "RED SEA"},
	{Code: "MIDDLE EAST"},
	{Code: "SOUTH AMERICA"},
	{Code: "AFRICA"},
	{Code: "KOREA"},
	{Code: "SOUTH EAST ASIA"},
	{Code: "MALAYSIA SINGAPORE INDONESIA"},
	{Code: "SOUTH ASIA"},
	{Code: "CHINA FEEDER", Label: "上海・長江流域フィーダーサービス", Templates: coscoTemplates("exp_sha_chanjiang_1.pdf", "exp_sha_chanjiang_2.pdf")},
	{Code: "NINGBO WENZHOU", Label: "寧波・温州サービス", Templates: coscoTemplates("exp_nbo.pdf")},
	{Code: "QINGDAO LIANYUNGANG", Label: "青島・連雲港サービス", Templates: coscoTemplates("exp_qin_lyg.pdf")},
	{Code: "XINGANG DALIAN YINGKOU", Label: "新港・大連・営口サービス", Templates: coscoTemplates("exp_dal_xtg.pdf")},
	{Code: "HONGKONG PEARL", Label: "香港・南中国及びパールリバーデルタサービス", Templates: coscoTemplates("exp_schina_jcv.pdf")},
	{Code: "TAIWAN", Label: "台湾サービス", Templates: coscoTemplates("exp_tw.pdf")},
}

var ShipmentlinkRegions = RegionTable{
	{Code: "NORTH AMERICA", Keywords: []string{"North America & Canada", "北米"}},
	{Code: "CENTRAL AMERICA", Keywords: []string{"Panama, Caribbean Sea", "中南米"}},
	{Code: "SOUTH AMERICA", Keywords: []string{"South Africa, East Coast Of South America, Mauritius", "南米東岸", "ブラジル"}},
	{Code: "EUROPE", Keywords: []string{"Europe", "欧州"}},
	{Code: "OCEANIA", Keywords: []string{"Oceania", "オセアニア", "Australia"}},
	{Code: "SOUTHEAST ASIA", Keywords: []string{"Southeast Asia", "東南アジア"}},
	{Code: "INDIAN SUBCONTINENT", Keywords: []string{"Indian Sub-Continent", "インド周辺", "インド", "スリランカ", "パキスタン"}},
	{Code: "CHINA", Keywords: []string{"China", "中国", "上海", "厦門"}},
	{Code: "TAIWAN", Keywords: []string{"Taiwan", "台湾"}},
	{Code: "HONG KONG", Keywords: []string{"Hong Kong", "香港"}},
	{Code: "KOREA", Keywords: []string{"Korea", "韓国"}},
	{Code: "MIDDLE EAST", Keywords: []string{"Arabian Persian Gulf", "中近東", "ペルシャ湾"}},
	{Code: "AFRICA", Keywords: []string{"South Africa", "アフリカ", "モーリシャス"}},
}

// ShipmentlinkDepartures maps Japanese ports to Shipmentlink location codes.
var ShipmentlinkDepartures = map[string]string{
	"Tokyo":    "JPTYO",
	"Yokohama": "JPYOK",
	"Osaka":    "JPOSA",
	"Nagoya":   "JPNGY",
	"Kobe":     "JPUKB",
}

func lookupFold(m map[string]string, key string) (string, bool) {
	key = strings.TrimSpace(key)
	for k, v := range m {
		if strings.EqualFold(k, key) {
			return v, true
		}
	}
	return "", false
}

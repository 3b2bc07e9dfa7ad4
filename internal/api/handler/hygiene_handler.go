package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HygieneHandler serves the static hygiene-education content in English and
// Telugu. The content is fixed at build time; there is nothing to persist.
type HygieneHandler struct{}

func NewHygieneHandler() *HygieneHandler {
	return &HygieneHandler{}
}

type hygieneSection struct {
	ID    string   `json:"id"`
	Title string   `json:"title"`
	Steps []string `json:"steps"`
}

type hygieneResponse struct {
	Title    string           `json:"title"`
	Language string           `json:"language"`
	Sections []hygieneSection `json:"sections"`
}

// Get handles GET /v1/hygiene?lang=en|te. Unknown languages fall back to
// English.
//
// @Summary      Hygiene education content
// @Tags         hygiene
// @Produce      json
// @Param        lang  query     string  false  "Language (en or te)"
// @Success      200   {object}  hygieneResponse
// @Router       /v1/hygiene [get]
func (h *HygieneHandler) Get(c echo.Context) error {
	lang := c.QueryParam("lang")
	if lang != "te" {
		lang = "en"
	}
	if lang == "te" {
		return c.JSON(http.StatusOK, hygieneTelugu)
	}
	return c.JSON(http.StatusOK, hygieneEnglish)
}

var hygieneEnglish = hygieneResponse{
	Title:    "Hygiene Instructions",
	Language: "en",
	Sections: []hygieneSection{
		{
			ID:    "handwashing",
			Title: "Proper Handwashing",
			Steps: []string{
				"Wet hands with clean water",
				"Apply soap and lather for 20 seconds",
				"Scrub between fingers and under nails",
				"Rinse thoroughly with clean water",
				"Dry with clean towel or air dry",
			},
		},
		{
			ID:    "toiletCleanliness",
			Title: "Toilet Cleanliness",
			Steps: []string{
				"Clean toilet bowl regularly with disinfectant",
				"Keep toilet area dry and ventilated",
				"Dispose of waste properly",
				"Wash hands after use",
			},
		},
		{
			ID:    "safeWater",
			Title: "Safe Drinking Water",
			Steps: []string{
				"Boil water for at least 1 minute",
				"Store in clean, covered containers",
				"Use clean cups and utensils",
				"Avoid contaminated water sources",
			},
		},
		{
			ID:    "wasteDisposal",
			Title: "Waste Disposal",
			Steps: []string{
				"Separate organic and inorganic waste",
				"Use designated waste collection areas",
				"Compost organic waste when possible",
				"Recycle materials when available",
			},
		},
	},
}

var hygieneTelugu = hygieneResponse{
	Title:    "పరిచ్ఛన్నత సూచనలు",
	Language: "te",
	Sections: []hygieneSection{
		{
			ID:    "handwashing",
			Title: "సరైన చేతుల కడుక్కోవడం",
			Steps: []string{
				"శుభ్రమైన నీటితో చేతులను తడిపించండి",
				"సబ్బు వేసి 20 సెకన్లపాటు రుద్దండి",
				"వేళ్లమధ్య మరియు గోళ్లకింద రుద్దండి",
				"శుభ్రమైన నీటితో పూర్తిగా కడుక్కోండి",
				"శుభ్రమైన టవల్‌తో లేదా గాలితో ఆరబెట్టండి",
			},
		},
		{
			ID:    "toiletCleanliness",
			Title: "టాయిలెట్ పరిశుభ్రత",
			Steps: []string{
				"క్రమం తప్పకుండా టాయిలెట్ బౌల్‌ను క్రిమిసంహారకంతో శుభ్రం చేయండి",
				"టాయిలెట్ ప్రాంతాన్ని పొడిగా మరియు గాలివేయనివ్వండి",
				"వ్యర్థ పదార్థాలను సరిగ్గా పారవేయండి",
				"ఉపయోగం తరువాత చేతులు కడుక్కోండి",
			},
		},
		{
			ID:    "safeWater",
			Title: "సురక్షితమైన తాగునీరు",
			Steps: []string{
				"కనీసం 1 నిమిషం పాటు నీటిని కొట్టండి",
				"శుభ్రమైన, కప్పబడిన కంటైనర్లలో నిల్వ చేయండి",
				"శుభ్రమైన కప్పులు మరియు పాత్రలను ఉపయోగించండి",
				"కలుషితమైన నీటి వనరులను తప్పించండి",
			},
		},
		{
			ID:    "wasteDisposal",
			Title: "వ్యర్థ పదార్థాల పారవేయడం",
			Steps: []string{
				"సేంద్రీయ మరియు అసేంద్రీయ వ్యర్థ పదార్థాలను వేరు చేయండి",
				"నియమిత వ్యర్థ పదార్థాల సేకరణ ప్రాంతాలను ఉపయోగించండి",
				"వీలైనప్పుడు సేంద్రీయ వ్యర్థాలను కంపోస్ట్ చేయండి",
				"అందుబాటులో ఉన్నప్పుడు పదార్థాలను రీసైకిల్ చేయండి",
			},
		},
	},
}

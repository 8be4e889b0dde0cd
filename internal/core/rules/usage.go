package rules

import "github.com/JonMunkholm/FileTransform/internal/core"

func init() {
	registerUsage()
}

// Usage column names as exported by the usage report. CITY_GATE,
// KY_MTR_BILL_GRP and CD_SERV_SUPP are shared with the enrollment report.
const (
	ColCustName            = "CUST_NAME"
	ColCustServAddr        = "CUST_SERV_ADDR"
	ColCustServCityStZip   = "CUST_SERV_CITY_ST_ZIP"
	ColCustPoolID          = "CUST_POOL_ID"
	ColLastBilledDate      = "DT_LST_BLLD"
	ColReadingFromDate     = "DT_RDG_FROM"
	ColReadingToDate       = "DT_RDG_TO"
	ColEnteredDate         = "DT_ENTERED"
	ColBillProcessingInstr = "CD_BILL_PRCS_INSTR"
	ColUsage               = "USAGE"
	ColBTUFactor           = "QY_BTU_FACTOR"
)

// Usage returns the Usage rule set.
func Usage() core.RuleSet {
	return core.RuleSet{
		Info: core.RuleSetInfo{
			Category: core.CategoryUsage,
			Keyword:  "usage",
			Priority: 1,
		},
		Rules: []core.Rule{
			core.QuoteWrap{Columns: []string{
				ColCustName, ColCustServAddr, ColCustServCityStZip, ColCustPoolID,
			}},
			core.DateFormat{
				Columns: []string{ColLastBilledDate, ColReadingFromDate, ColReadingToDate, ColEnteredDate},
				Layout:  core.DefaultDateLayout,
			},
			core.ZeroPad{Widths: map[string]int{
				ColMeterBillGroup:      2,
				ColCityGate:            4,
				ColBillProcessingInstr: 4,
				ColServiceSupplierCode: 4,
			}},
			core.StripSeparator{
				Columns: []string{ColUsage, ColBTUFactor},
				Sep:     core.DefaultSeparator,
			},
		},
	}
}

func registerUsage() {
	core.Register(Usage())
}

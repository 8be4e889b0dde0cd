package rules

import "github.com/JonMunkholm/FileTransform/internal/core"

func init() {
	registerEnrollment()
}

// Enrollment column names as exported by the enrollment report.
const (
	ColCustomerName        = "CUSTOMER_NAME"
	ColServiceAddress      = "CUSTOMER_SERVICE_ADDRESS"
	ColServiceCityStateZip = "CUSTOMER_SERVICE_CITY_STATE_ZIP"
	ColTariffShortDesc     = "TX_TAR_SHORT_DESC"
	ColTariffScheduleDesc  = "TX_TAR_SCH_DESC"
	ColServiceSupplierText = "TX_SERV_SUPP"
	ColEffectiveDate       = "DT_EFF"
	ColEnrollStartDate     = "CUST_ENR_START_DATE"
	ColEDIDropDate         = "CUST_EDI_DROP_DATE"
	ColLastUpdate          = "LAST_UPDATE"
	ColCityGate            = "CITY_GATE"
	ColMeterBillGroup      = "KY_MTR_BILL_GRP"
	ColServiceSupplierCode = "CD_SERV_SUPP"
	ColTotalAnnualUsage    = "TOT_ANNUAL_USAGE"
	ColPeakDay             = "CUST_PEAK_DAY"
	ColBaseLoad            = "CUST_BASE_LOAD"
	ColThermalResponse     = "CUST_THERMAL_RESPONSE"
)

// Enrollment returns the Enrollment rule set.
func Enrollment() core.RuleSet {
	return core.RuleSet{
		Info: core.RuleSetInfo{
			Category: core.CategoryEnrollment,
			Keyword:  "enrollment",
			Priority: 0,
		},
		Rules: []core.Rule{
			core.QuoteWrap{Columns: []string{
				ColCustomerName, ColServiceAddress, ColServiceCityStateZip,
				ColTariffShortDesc, ColTariffScheduleDesc,
			}},
			core.CustomWrap{
				Columns: []string{ColServiceSupplierText},
				Prefix:  core.DefaultCustomPrefix,
				Suffix:  core.DefaultCustomSuffix,
			},
			core.DateFormat{
				Columns: []string{ColEffectiveDate, ColEnrollStartDate, ColEDIDropDate, ColLastUpdate},
				Layout:  core.DefaultDateLayout,
			},
			core.ZeroPad{Widths: map[string]int{
				ColCityGate:            4,
				ColMeterBillGroup:      2,
				ColServiceSupplierCode: 4,
			}},
			core.StripSeparator{
				Columns: []string{ColTotalAnnualUsage, ColPeakDay, ColBaseLoad, ColThermalResponse},
				Sep:     core.DefaultSeparator,
			},
		},
	}
}

func registerEnrollment() {
	core.Register(Enrollment())
}

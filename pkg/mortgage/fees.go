package mortgage

// Fees is the flat fee schedule for a quote. The engine treats each item as
// an opaque caller-supplied dollar amount; jurisdiction rules layer the
// lender's title premium and transfer taxes on top separately.
type Fees struct {
	Underwriting float64 `json:"underwriting" yaml:"underwriting"`
	Processing   float64 `json:"processing" yaml:"processing"`
	Appraisal    float64 `json:"appraisal" yaml:"appraisal"`
	TaxService   float64 `json:"taxService" yaml:"taxService"`
	FloodCert    float64 `json:"floodCert" yaml:"floodCert"`
	Survey       float64 `json:"survey" yaml:"survey"`
	TitleClosing float64 `json:"titleClosing" yaml:"titleClosing"`
	OwnersTitle  float64 `json:"ownersTitle" yaml:"ownersTitle"`
	TitleSearch  float64 `json:"titleSearch" yaml:"titleSearch"`
	Endorsements float64 `json:"endorsements" yaml:"endorsements"`
	Recording    float64 `json:"recording" yaml:"recording"`
	CreditReport float64 `json:"creditReport" yaml:"creditReport"`
}

// DefaultFees is the engine's documented default schedule, used when the
// caller supplies none.
func DefaultFees() Fees {
	return Fees{
		Underwriting: 1095,
		Processing:   895,
		Appraisal:    600,
		TaxService:   85,
		FloodCert:    25,
		Survey:       350,
		TitleClosing: 495,
		OwnersTitle:  0,
		TitleSearch:  250,
		Endorsements: 150,
		Recording:    225,
		CreditReport: 75,
	}
}

// Total sums every flat fee in the schedule.
func (f Fees) Total() float64 {
	return f.Underwriting + f.Processing + f.Appraisal + f.TaxService +
		f.FloodCert + f.Survey + f.TitleClosing + f.OwnersTitle +
		f.TitleSearch + f.Endorsements + f.Recording + f.CreditReport
}

// prepaidFinanceCharges returns the subset of fees treated as prepaid
// finance charges for APR purposes, excluding the lender's title premium
// which the engine adds on top.
func (f Fees) prepaidFinanceCharges() float64 {
	return f.Underwriting + f.Processing + f.TaxService + f.TitleClosing +
		f.FloodCert + f.Endorsements
}

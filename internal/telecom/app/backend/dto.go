package backend

import "github.com/klwxsrx/simctl/internal/session/domain"

const (
	PlanTypePrepaid  PlanType = "PREPAID"
	PlanTypePostpaid PlanType = "POSTPAID"
)

type (
	PlanType string

	Plan struct {
		ID        int64    `json:"id,omitempty"`
		Name      string   `json:"name"`
		Price     float64  `json:"price"`
		DataLimit float64  `json:"dataLimit"`
		CallLimit int64    `json:"callLimit"`
		Type      PlanType `json:"type"`
		Validity  int64    `json:"validity"`
	}

	Customer struct {
		ID        int64  `json:"id"`
		Name      string `json:"name"`
		Email     string `json:"email"`
		Phone     string `json:"phone"`
		AadhaarNo string `json:"aadhaarNo"`
	}

	// SIM dates are backend calendar dates (yyyy-mm-dd) and are passed through untouched.
	SIM struct {
		ID              int64     `json:"id"`
		PhoneNumber     string    `json:"phoneNumber"`
		SIMNumber       string    `json:"simNumber"`
		Type            PlanType  `json:"type"`
		SIMType         PlanType  `json:"simType"`
		Status          string    `json:"status"`
		Balance         float64   `json:"balance"`
		ActivationDate  string    `json:"activationDate"`
		ValidityEndDate string    `json:"validityEndDate"`
		Plan            *Plan     `json:"plan"`
		Customer        *Customer `json:"customer"`
	}

	Bill struct {
		ID            int64    `json:"id"`
		SIM           *SIM     `json:"sim"`
		Plan          *Plan    `json:"plan"`
		Amount        float64  `json:"amount"`
		Status        string   `json:"status"`
		GeneratedDate string   `json:"generatedDate"`
		PaidDate      string   `json:"billPaiddate"`
		Month         string   `json:"month"`
		ExtraDataUsed float64  `json:"extraDataUsed"`
		ExtraCallUsed int64    `json:"extraCallUsed"`
		SIMType       PlanType `json:"simType"`
	}

	Usage struct {
		ID              int64   `json:"id"`
		Date            string  `json:"date"`
		Type            string  `json:"type"`
		DataUsed        float64 `json:"dataUsed"`
		CallMinutesUsed int64   `json:"callMinutesUsed"`
		PhoneNumber     string  `json:"simCardPhoneNumber"`
	}

	LoginResult struct {
		Token domain.Credential `json:"token"`
		User  domain.Identity   `json:"user"`
	}

	Registration struct {
		Name      string `json:"name"`
		Email     string `json:"email"`
		Password  string `json:"password"`
		Phone     string `json:"phone"`
		AadhaarNo string `json:"aadhaarNo"`
	}

	PasswordChange struct {
		AadhaarNo   string `json:"aadhaarNo"`
		OldPassword string `json:"oldPassword"`
		NewPassword string `json:"newPassword"`
	}

	Payment struct {
		SIMID  int64   `json:"simId"`
		PlanID int64   `json:"planId"`
		Amount float64 `json:"amount"`
	}

	SimulationDate struct {
		Date string `json:"simulationDate"`
	}

	// Message is the free-form answer of endpoints that only confirm an action.
	Message struct {
		Message string `json:"message"`
	}
)

func (s SIM) PlanType() PlanType {
	if s.SIMType != "" {
		return s.SIMType
	}
	return s.Type
}

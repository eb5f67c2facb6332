package dto

type SendExchangeRequest struct {
	To               string `json:"to"`
	FromOfferedSkill string `json:"from_offered_skill"`
	FromWantedSkill  string `json:"from_wanted_skill"`
}

type AccessResponse struct {
	With       string `json:"with"`
	CanMessage bool   `json:"can_message"`
	CanRate    bool   `json:"can_rate"`
}

type PartnersResponse struct {
	Partners []string `json:"partners"`
}

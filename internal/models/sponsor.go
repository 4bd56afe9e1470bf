package models

import "time"

// SponsorLevel represents a sponsorship tier
type SponsorLevel string

const (
	SponsorLevelDiamond SponsorLevel = "Diamond"
	SponsorLevelGold    SponsorLevel = "Gold"
	SponsorLevelSilver  SponsorLevel = "Silver"
	SponsorLevelBronze  SponsorLevel = "Bronze"
	SponsorLevelOther   SponsorLevel = "Other"
)

// sponsorLevelRank orders tiers for public display, highest first
var sponsorLevelRank = map[SponsorLevel]int{
	SponsorLevelDiamond: 0,
	SponsorLevelGold:    1,
	SponsorLevelSilver:  2,
	SponsorLevelBronze:  3,
	SponsorLevelOther:   4,
}

// ValidSponsorLevels are the tiers accepted by the admin forms
var ValidSponsorLevels = map[SponsorLevel]bool{
	SponsorLevelDiamond: true,
	SponsorLevelGold:    true,
	SponsorLevelSilver:  true,
	SponsorLevelBronze:  true,
	SponsorLevelOther:   true,
}

// Rank returns the display rank of a level; unknown levels sort last
func (l SponsorLevel) Rank() int {
	if r, ok := sponsorLevelRank[l]; ok {
		return r
	}
	return len(sponsorLevelRank)
}

// Sponsor represents an organization sponsoring AZPDSCC events
type Sponsor struct {
	ID        string       `json:"id" db:"id"`
	Name      string       `json:"name" db:"name"`
	Logo      string       `json:"logo" db:"logo"`
	Level     SponsorLevel `json:"level" db:"level"`
	Website   string       `json:"website" db:"website"`
	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
}

package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CardStatus is the lifecycle state of an NFC card.
type CardStatus string

const (
	CardStatusActive   CardStatus = "active"
	CardStatusInactive CardStatus = "inactive"
)

// SocialLinks holds a card's public social profiles.
type SocialLinks struct {
	LinkedIn  string `bson:"linkedin,omitempty" json:"linkedin,omitempty"`
	Twitter   string `bson:"twitter,omitempty" json:"twitter,omitempty"`
	Facebook  string `bson:"facebook,omitempty" json:"facebook,omitempty"`
	Instagram string `bson:"instagram,omitempty" json:"instagram,omitempty"`
}

// Card is a physical NFC card and its display profile. NFCID is the
// external identifier written to the physical tag.
type Card struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	NFCID       string             `bson:"nfcId" json:"nfcId"`
	Status      CardStatus         `bson:"status" json:"status"`
	Name        string             `bson:"name,omitempty" json:"name,omitempty"`
	Title       string             `bson:"title,omitempty" json:"title,omitempty"`
	Company     string             `bson:"company,omitempty" json:"company,omitempty"`
	Email       string             `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Website     string             `bson:"website,omitempty" json:"website,omitempty"`
	Bio         string             `bson:"bio,omitempty" json:"bio,omitempty"`
	SocialLinks SocialLinks        `bson:"socialLinks,omitempty" json:"socialLinks,omitempty"`
	Template    string             `bson:"template,omitempty" json:"template,omitempty"`
	Owner       primitive.ObjectID `bson:"owner,omitempty" json:"-"`
	CreatedAt   time.Time          `bson:"createdAt" json:"-"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"-"`
}

// CardPublicView is the redacted projection returned to unauthenticated
// taps. Management fields (owner, audit timestamps, status) are excluded.
type CardPublicView struct {
	Name        string      `json:"name,omitempty"`
	Title       string      `json:"title,omitempty"`
	Company     string      `json:"company,omitempty"`
	Email       string      `json:"email,omitempty"`
	Phone       string      `json:"phone,omitempty"`
	Website     string      `json:"website,omitempty"`
	Bio         string      `json:"bio,omitempty"`
	SocialLinks SocialLinks `json:"socialLinks,omitempty"`
	Template    string      `json:"template,omitempty"`
}

// PublicView returns the card's public display fields.
func (c *Card) PublicView() CardPublicView {
	return CardPublicView{
		Name:        c.Name,
		Title:       c.Title,
		Company:     c.Company,
		Email:       c.Email,
		Phone:       c.Phone,
		Website:     c.Website,
		Bio:         c.Bio,
		SocialLinks: c.SocialLinks,
		Template:    c.Template,
	}
}

package models

// Client is a hotel guest on file.
type Client struct {
	Base
	Name        string `json:"name" validate:"required"`
	Email       string `json:"email" validate:"required,formemail"`
	Phone       string `json:"phone" validate:"required,phone"`
	Nationality string `json:"nationality" validate:"required"`
	Stays       int    `json:"stays" validate:"gte=0"`
}

func (c *Client) Normalize() {
	c.Name = clean(c.Name)
	c.Email = clean(c.Email)
	c.Phone = clean(c.Phone)
	c.Nationality = clean(c.Nationality)
	if c.Stays < 0 {
		c.Stays = 0
	}
}

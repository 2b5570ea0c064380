package profile

import (
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

const (
	sampleUserID = "sample"
	defaultBio   = "Into the latest in technology and science. Following how AI changes the future on NewsMatch. #Tech #Science #Future"
	defaultPlace = "Tokyo, Japan"
)

// Field names a user-editable profile attribute.
type Field int

const (
	Name Field = iota
	Bio
	Location
	Website
)

// Fields lists the editable fields in form order.
func Fields() []Field {
	return []Field{Name, Bio, Location, Website}
}

func (f Field) String() string {
	switch f {
	case Name:
		return "Name"
	case Bio:
		return "Bio"
	case Location:
		return "Location"
	case Website:
		return "Website"
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

type Profile struct {
	Name     string
	Bio      string
	Location string
	Website  string
}

// Default builds the starting profile for userID. An empty id is a guest.
func Default(userID string) Profile {
	userID = strings.TrimSpace(userID)

	name := "Guest User"
	switch {
	case userID == sampleUserID:
		name = "Sample User"
	case userID != "":
		name = userID
	}

	linkID := userID
	if linkID == "" {
		linkID = sampleUserID
	}

	return Profile{
		Name:     name,
		Bio:      defaultBio,
		Location: defaultPlace,
		Website:  "newsmatch.jp/profile?userid=" + url.QueryEscape(linkID),
	}
}

// Get returns the value of f.
func (p Profile) Get(f Field) string {
	switch f {
	case Name:
		return p.Name
	case Bio:
		return p.Bio
	case Location:
		return p.Location
	case Website:
		return p.Website
	}
	return ""
}

func (p *Profile) set(f Field, v string) {
	switch f {
	case Name:
		p.Name = v
	case Bio:
		p.Bio = v
	case Location:
		p.Location = v
	case Website:
		p.Website = v
	}
}

// Initial is the avatar letter.
func (p Profile) Initial() string {
	r, _ := utf8.DecodeRuneInString(p.Name)
	if r == utf8.RuneError {
		return "?"
	}
	return strings.ToUpper(string(r))
}

// ShareURL is the public link to userID's profile under base.
func ShareURL(base, userID string) string {
	if userID == "" {
		userID = sampleUserID
	}
	return strings.TrimRight(base, "/") + "/#/profile?userid=" + url.QueryEscape(userID)
}

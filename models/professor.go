package models

// Professor is an entry in the professor directory.
type Professor struct {
	ID              int      `yaml:"id"`
	Name            string   `yaml:"name"`
	University      string   `yaml:"university"`
	Department      string   `yaml:"department"`
	Field           string   `yaml:"field"`
	Country         string   `yaml:"country"`
	Rating          float64  `yaml:"rating"`
	Students        int      `yaml:"students"`
	Publications    int      `yaml:"publications"`
	Positions       int      `yaml:"positions"`
	Bio             string   `yaml:"bio"`
	Specializations []string `yaml:"specializations"`
}

package form

import "github.com/bennofs/mintec/pkg/mintec/models"

func (x *extraction) readPerson() bool {
	x.record.Name = x.text(nameAddr)
	if x.record.Name == "" {
		x.fatal(nameAddr, models.KindMissingRequiredValue, "missing name")
	}

	c := x.cell(birthDateAddr)
	date, err := c.Time(x.grid.Date1904())
	switch {
	case err != nil:
		x.fatal(birthDateAddr, models.KindUnparsableDate, "unparsable date: "+c.Text())
	case date == nil:
		x.fatal(birthDateAddr, models.KindMissingRequiredValue, "missing birth date")
	default:
		x.record.BirthDate = date
	}
	return true
}

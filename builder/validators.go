package builder

// Validation helpers used by Build before any vertex is created.

// validateRecords ensures every identifying field of every record is
// non-empty. The first offending record is reported with its position.
//
// Complexity: O(len(records)).
func validateRecords(method string, records []Record) error {
	for i := range records {
		r := &records[i]
		switch {
		case r.Player == "":
			return builderErrorf(method, ErrEmptyField, "record %d: player", i)
		case r.Team == "":
			return builderErrorf(method, ErrEmptyField, "record %d: team", i)
		case r.Season == "":
			return builderErrorf(method, ErrEmptyField, "record %d: season", i)
		}
	}

	return nil
}

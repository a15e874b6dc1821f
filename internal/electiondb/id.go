package electiondb

import "github.com/google/uuid"

// Namespace for row IDs. Fixed forever: re-importing the same code yields the
// same ID.
var Namespace = uuid.MustParse("6f1c3b7e-2a4d-5e8f-9b0a-1c2d3e4f5a6b")

func v5(name string) uuid.UUID {
	return uuid.NewSHA1(Namespace, []byte(name))
}

func PrefectureID(code string) uuid.UUID {
	return v5("prefecture:" + code)
}

func BlockID(code string) uuid.UUID {
	return v5("block:" + code)
}

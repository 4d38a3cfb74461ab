package kernel

type CandidateID string

func NewCandidateID(id string) CandidateID { return CandidateID(id) }
func (c CandidateID) String() string       { return string(c) }
func (c CandidateID) IsEmpty() bool        { return string(c) == "" }

type SearchID string

func NewSearchID(id string) SearchID { return SearchID(id) }
func (s SearchID) String() string    { return string(s) }
func (s SearchID) IsEmpty() bool     { return string(s) == "" }

type UserID string

func NewUserID(id string) UserID { return UserID(id) }
func (u UserID) String() string  { return string(u) }
func (u UserID) IsEmpty() bool   { return string(u) == "" }

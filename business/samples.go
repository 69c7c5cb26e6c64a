package business

// Role granted access by the sample types.
const UsersRole = "Users"

var (
	classA1Properties = NewPropertyRegistry()
	ClassA1A          = RegisterProperty[string](classA1Properties, "A")
	ClassA1B          = RegisterProperty[string](classA1Properties, "B")
	classA1Rules      = sampleRules(UsersRole)

	classC2Properties = NewPropertyRegistry()
	ClassC2A          = RegisterProperty[string](classC2Properties, "A")
	ClassC2B          = RegisterProperty[string](classC2Properties, "B")
	classC2Rules      = sampleRules("invalid")
)

// sampleRules restricts A to Users and gates the object on objectRole.
func sampleRules(objectRole string) *AuthorizationRules {
	r := NewAuthorizationRules()
	r.AllowRead("A", UsersRole)
	r.AllowWrite("A", UsersRole)
	r.AllowCreate(objectRole)
	r.AllowEdit(objectRole)
	r.AllowDelete(objectRole)
	return r
}

// ClassA1 is a sample object editable by Users.
type ClassA1 struct {
	*BusinessBase
}

// NewClassA1 returns a fetched ClassA1 holding a and b.
func NewClassA1(principal *Principal, a, b string) *ClassA1 {
	c := &ClassA1{BusinessBase: NewBusinessBase(classA1Properties, classA1Rules, principal)}
	LoadProperty(c.BusinessBase, ClassA1A, a)
	LoadProperty(c.BusinessBase, ClassA1B, b)
	return c
}

func (c *ClassA1) A() (string, error)  { return GetProperty(c.BusinessBase, ClassA1A) }
func (c *ClassA1) SetA(v string) error { return SetProperty(c.BusinessBase, ClassA1A, v) }
func (c *ClassA1) B() (string, error)  { return GetProperty(c.BusinessBase, ClassA1B) }
func (c *ClassA1) SetB(v string) error { return SetProperty(c.BusinessBase, ClassA1B, v) }

// ClassC2 is a sample object whose object rules name a role nobody holds.
type ClassC2 struct {
	*BusinessBase
}

// NewClassC2 returns a fetched ClassC2 holding a and b.
func NewClassC2(principal *Principal, a, b string) *ClassC2 {
	c := &ClassC2{BusinessBase: NewBusinessBase(classC2Properties, classC2Rules, principal)}
	LoadProperty(c.BusinessBase, ClassC2A, a)
	LoadProperty(c.BusinessBase, ClassC2B, b)
	return c
}

func (c *ClassC2) A() (string, error)  { return GetProperty(c.BusinessBase, ClassC2A) }
func (c *ClassC2) SetA(v string) error { return SetProperty(c.BusinessBase, ClassC2A, v) }
func (c *ClassC2) B() (string, error)  { return GetProperty(c.BusinessBase, ClassC2B) }
func (c *ClassC2) SetB(v string) error { return SetProperty(c.BusinessBase, ClassC2B, v) }

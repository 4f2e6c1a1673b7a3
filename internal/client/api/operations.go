package api

// operation описывает одну операцию клиента: имя для логов,
// сообщение по умолчанию и вид ошибки для ServerError
type operation struct {
	kind     error
	name     string
	fallback string
}

var (
	opRegister     = operation{name: "register", fallback: "Registration failed", kind: ErrRegistration}
	opLogin        = operation{name: "login", fallback: "Login failed", kind: ErrAuthentication}
	opGetProfile   = operation{name: "get_profile", fallback: "Failed to get profile", kind: ErrProfileFetch}
	opListRecords  = operation{name: "list_records", fallback: "Failed to fetch data", kind: ErrDataFetch}
	opGetRecord    = operation{name: "get_record", fallback: "Failed to fetch data", kind: ErrDataFetch}
	opCreateRecord = operation{name: "create_record", fallback: "Failed to create data", kind: ErrDataCreate}
	opUpdateRecord = operation{name: "update_record", fallback: "Failed to update data", kind: ErrDataUpdate}
	opDeleteRecord = operation{name: "delete_record", fallback: "Failed to delete data", kind: ErrDataDelete}
)

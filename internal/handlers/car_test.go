package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/crucial707/car-rental/internal/models"
)

var carColumns = []string{"id", "make", "model", "price_per_day", "category", "available"}

func TestCarHandler_ListCars(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, make, model, price_per_day, category, available FROM cars ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(carColumns).
			AddRow(1, "Toyota", "Corolla", 40.0, "Sedan", true).
			AddRow(2, "Ford", "Mustang", 75.0, "Sports", true))

	h := &CarHandler{Service: newService(db)}

	req := httptest.NewRequest("GET", "/cars", nil)
	rr := httptest.NewRecorder()
	h.ListCars(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("ListCars status: got %d, want 200", rr.Code)
	}
	var list []models.Car
	if err := json.NewDecoder(rr.Body).Decode(&list); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(list) != 2 || list[0].Make != "Toyota" || list[1].PricePerDay != 75.0 {
		t.Errorf("unexpected list: %+v", list)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_ListCars_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, make, model, price_per_day, category, available FROM cars`).
		WillReturnRows(sqlmock.NewRows(carColumns))

	h := &CarHandler{Service: newService(db)}

	req := httptest.NewRequest("GET", "/cars", nil)
	rr := httptest.NewRecorder()
	h.ListCars(rr, req)

	if got := bytes.TrimSpace(rr.Body.Bytes()); string(got) != "[]" {
		t.Errorf("ListCars body: got %s, want []", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_ListCars_DBError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT id, make, model`).WillReturnError(errors.New("connection reset"))

	h := &CarHandler{Service: newService(db)}

	req := httptest.NewRequest("GET", "/cars", nil)
	rr := httptest.NewRecorder()
	h.ListCars(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("ListCars status: got %d, want 500", rr.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["error"] != ErrMessageInternal {
		t.Errorf("unexpected error body: %v", out)
	}
}

func TestCarHandler_AddCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO cars \(make, model, price_per_day, category, available\)`).
		WithArgs("Toyota", "Corolla", 40.0, "Sedan").
		WillReturnRows(sqlmock.NewRows(carColumns).AddRow(1, "Toyota", "Corolla", 40.0, "Sedan", true))

	h := &CarHandler{Service: newService(db)}

	body := []byte(`{"make":"Toyota","model":"Corolla","price_per_day":40.0,"category":"Sedan"}`)
	req := httptest.NewRequest("POST", "/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.AddCar(rr, req)

	if rr.Code != http.StatusCreated {
		t.Errorf("AddCar status: got %d, want 201", rr.Code)
	}
	var out CarResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Car == nil || out.Car.ID != 1 || !out.Car.Available {
		t.Errorf("unexpected response: %+v", out)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_AddCar_MissingField(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &CarHandler{Service: newService(db)}

	body := []byte(`{"make":"Toyota","model":"Corolla","category":"Sedan"}`)
	req := httptest.NewRequest("POST", "/cars", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.AddCar(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("AddCar status: got %d, want 400", rr.Code)
	}
	var out struct {
		Fields map[string]string `json:"fields"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Fields["price_per_day"] != "required" {
		t.Errorf("unexpected fields: %+v", out.Fields)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_DeleteCar(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM cars WHERE id = \$1`).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 1))

	h := &CarHandler{Service: newService(db)}

	req := requestWithChiURLParams("DELETE", "/cars/1", nil, map[string]string{"id": "1"})
	rr := httptest.NewRecorder()
	h.DeleteCar(rr, req)

	if rr.Code != http.StatusOK {
		t.Errorf("DeleteCar status: got %d, want 200", rr.Code)
	}
	var out MessageResponse
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out.Message != "Car deleted" {
		t.Errorf("unexpected message: %q", out.Message)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_DeleteCar_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`DELETE FROM cars WHERE id = \$1`).
		WithArgs(99).
		WillReturnResult(sqlmock.NewResult(0, 0))

	h := &CarHandler{Service: newService(db)}

	req := requestWithChiURLParams("DELETE", "/cars/99", nil, map[string]string{"id": "99"})
	rr := httptest.NewRecorder()
	h.DeleteCar(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("DeleteCar status: got %d, want 404", rr.Code)
	}
	var out map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if out["error"] != "Car not found" {
		t.Errorf("unexpected error: %v", out["error"])
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_DeleteCar_InvalidID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &CarHandler{Service: newService(db)}

	req := requestWithChiURLParams("DELETE", "/cars/abc", nil, map[string]string{"id": "abc"})
	rr := httptest.NewRecorder()
	h.DeleteCar(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Errorf("DeleteCar status: got %d, want 400", rr.Code)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

func TestCarHandler_DeleteCar_IDBeyondIntegerColumn(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := &CarHandler{Service: newService(db)}

	req := requestWithChiURLParams("DELETE", "/cars/3000000000", nil, map[string]string{"id": "3000000000"})
	rr := httptest.NewRecorder()
	h.DeleteCar(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("DeleteCar status: got %d, want 404", rr.Code)
	}
	// No query may reach the database.
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("expectations: %v", err)
	}
}

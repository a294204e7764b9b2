// Package repository define el contrato de dominio del puente de federación.
//
// La interfaz Users representa la fachada de solo-lectura que consume el
// host de identidad: resolver usuarios y verificar credenciales contra una
// base SQL legada cuyo esquema no es nuestro. Las implementaciones concretas
// viven en internal/store.
//
// Convenciones:
//   - Context siempre es el primer parámetro
//   - "no existe" se expresa con Record nil / ok=false, nunca con error
//   - Errores de dominio están en errors.go (ErrUnavailable, ErrQueryFailed,
//     ErrNotImplemented)
package repository

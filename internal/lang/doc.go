// Package lang describes a compiled pdef package: modules, definitions and
// the type expressions that link them.
//
// Values in this package are produced once by a front end and treated as
// read-only by every generator stage.
//
// The package also carries a small YAML front end (LoadFile / Parse) that
// builds a linked Package from a structured description:
//
//	package: example
//	modules:
//	  - name: pdef.example
//	    definitions:
//	      - enum: Sex
//	        values: [MALE, FEMALE]
//	      - message: Human
//	        fields:
//	          - name: id
//	            type: int64
//	          - name: sex
//	            type: Sex
//	            discriminator: true
//	      - message: Man
//	        base: Human
//	        discriminator_value: Sex.MALE
//	      - interface: Humans
//	        methods:
//	          - name: find
//	            args:
//	              - name: id
//	                type: int64
//	            result: Human
//
// # Type syntax
//
//   - Primitives: bool, int16, int32, int64, float, double, string, datetime
//   - void
//   - Containers: list<T>, set<T>, map<K, V>
//   - Definitions: Name (same module) or module.Name
//   - Enum values: Enum.VALUE or module.Enum.VALUE
package lang
